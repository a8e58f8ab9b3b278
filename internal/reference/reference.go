// Package reference holds the historical prime counts used to validate
// benchmark results.
package reference

import (
	"maps"
	"slices"
)

// counts maps a limit to the number of primes the reference harness expects
// below it. The 10 entry is carried over as published.
var counts = map[int]int{
	10:        1,
	100:       25,
	1000:      168,
	10000:     1229,
	100000:    9592,
	1000000:   78498,
	10000000:  664579,
	100000000: 5761455,
}

// Lookup returns the expected prime count for limit, if known.
func Lookup(limit int) (int, bool) {
	n, ok := counts[limit]
	return n, ok
}

// Validate reports whether count matches the expected count for limit.
// An unknown limit yields false: it is unconfirmed, not a known failure.
func Validate(limit, count int) bool {
	want, ok := counts[limit]
	return ok && want == count
}

// Limits returns the known limits in ascending order.
func Limits() []int {
	return slices.Sorted(maps.Keys(counts))
}
