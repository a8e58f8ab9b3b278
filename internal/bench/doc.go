// Package bench runs the timed sieve benchmark and reports its outcome.
//
// A run constructs and runs a fresh sieve for the configured limit, counts the
// pass, and repeats while the elapsed time is below the configured duration.
// The deadline is only checked between passes, so the last pass always runs to
// completion and the total elapsed time may exceed the budget by one pass.
//
// Passes never overlap and share no state. The sieve from the final pass is
// kept on the Result for counting, validation, and optional enumeration.
package bench
