package sieve

import (
	"iter"
	"math"
)

// MaxLimit is the largest accepted limit. Its bitfield occupies 1 GiB.
const MaxLimit = 1 << 34

// Sieve holds the primality candidacy of every odd number below a limit.
type Sieve struct {
	limit int
	bits  *bitfield
	done  bool
}

// New allocates a Sieve for the primes below limit.
//
// Every odd number in [3, limit) starts out as a candidate. A limit of 2
// yields an empty bitfield. A limit below 2 or above MaxLimit returns a
// *LimitError.
func New(limit int) (*Sieve, error) {
	if limit < 2 || limit > MaxLimit {
		return nil, &LimitError{Code: ErrCodeInvalidLimit, Limit: limit}
	}
	return &Sieve{
		limit: limit,
		bits:  newBitfield((limit - 2) / 2),
	}, nil
}

// Limit returns the exclusive upper bound.
func (s *Sieve) Limit() int {
	return s.limit
}

// Run eliminates every odd composite below the limit.
//
// For each odd factor f up to isqrt(limit) that is still a candidate, the odd
// multiples f*f, f*f+2f, ... are cleared. In index space (n-3)/2 that is a
// start of (f*f-3)/2 and a stride of f. Calling Run again is a no-op.
func (s *Sieve) Run() {
	if s.done {
		return
	}
	q := isqrt(s.limit)
	for f := 3; f <= q; f += 2 {
		if !s.bits.test((f - 3) / 2) {
			continue
		}
		s.bits.clearStride((f*f-3)/2, f)
	}
	s.done = true
}

// Count returns the number of primes below the limit, including 2.
func (s *Sieve) Count() int {
	s.Run()
	n := s.bits.count()
	if s.limit > 2 {
		n++
	}
	return n
}

// Contains reports whether n is a prime below the limit.
func (s *Sieve) Contains(n int) bool {
	if n == 2 {
		return s.limit > 2
	}
	if n < 3 || n >= s.limit || n%2 == 0 {
		return false
	}
	s.Run()
	return s.bits.test((n - 3) / 2)
}

// Primes returns the primes below the limit in increasing order.
// The sequence can be ranged over any number of times.
func (s *Sieve) Primes() iter.Seq[int] {
	return func(yield func(int) bool) {
		s.Run()
		if s.limit <= 2 {
			return
		}
		if !yield(2) {
			return
		}
		s.bits.each(func(i int) bool {
			return yield(2*i + 3)
		})
	}
}

// isqrt returns floor(sqrt(n)) for n >= 0. The corrections compare by
// division so that no intermediate square overflows.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}
