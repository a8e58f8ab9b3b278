// Package sieve implements an odd-only Sieve of Eratosthenes.
//
// A Sieve owns one candidacy flag per odd number in [3, limit). Even numbers
// above 2 are never stored, and 2 is implicitly prime. Run clears the flag of
// every odd composite, after which a set flag at index i means 2i+3 is prime.
//
// Lifecycle:
//
//	s, err := sieve.New(1_000_000)
//	if err != nil { ... }
//	s.Run()
//	n := s.Count() // 78498
//
// Queries made before Run run the sieve first. Run is idempotent.
//
// A Sieve is not safe for concurrent use. Each benchmark pass builds its own.
package sieve
