// Package harness runs conformance scenarios against the sieve.
//
// A scenario is a YAML file naming a limit and a list of assertions about the
// sieve built for that limit:
//
//	name: below-1000
//	description: Primes below one thousand
//	limit: 1000
//	assertions:
//	  - type: count
//	    count: 168
//	  - type: contains
//	    values: [2, 3, 997]
//	  - type: excludes
//	    values: [1, 9, 1000]
//	  - type: first_primes
//	    values: [2, 3, 5, 7]
//	  - type: valid
//	    valid: true
//
// Scenario files are decoded strictly (unknown keys are rejected) and then
// checked against a CUE schema before they run.
//
// Each scenario also produces a Snapshot: a canonical JSON summary of what
// the sieve computed. Snapshots are compared against golden files to catch
// behavioral drift that the assertions do not pin down.
package harness
