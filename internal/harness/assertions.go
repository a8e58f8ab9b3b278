package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/primesieve/internal/reference"
	"github.com/roach88/primesieve/internal/sieve"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// EvaluateAssertions runs every assertion against s and returns one message
// per failure, in assertion order.
func EvaluateAssertions(s *sieve.Sieve, assertions []Assertion) []string {
	var errs []string
	for i, a := range assertions {
		if err := evaluate(s, a); err != nil {
			errs = append(errs, fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}
	return errs
}

func evaluate(s *sieve.Sieve, a Assertion) error {
	switch a.Type {
	case AssertCount:
		return assertCount(s, a)
	case AssertContains:
		return assertMembership(s, a, true)
	case AssertExcludes:
		return assertMembership(s, a, false)
	case AssertFirstPrimes:
		return assertFirstPrimes(s, a)
	case AssertValid:
		return assertValid(s, a)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

func assertCount(s *sieve.Sieve, a Assertion) error {
	if a.Count == nil {
		return fmt.Errorf("count is required for %s", AssertCount)
	}
	if got := s.Count(); got != *a.Count {
		return &AssertionError{
			Type:     AssertCount,
			Expected: fmt.Sprintf("%d primes below %d", *a.Count, s.Limit()),
			Actual:   fmt.Sprintf("%d primes", got),
		}
	}
	return nil
}

// assertMembership checks that every value's primality equals want.
func assertMembership(s *sieve.Sieve, a Assertion, want bool) error {
	var wrong []int
	for _, v := range a.Values {
		if s.Contains(v) != want {
			wrong = append(wrong, v)
		}
	}
	if len(wrong) == 0 {
		return nil
	}

	typ, expected, actual := AssertContains, "all of %v reported prime", "not prime: %v"
	if !want {
		typ, expected, actual = AssertExcludes, "none of %v reported prime", "reported prime: %v"
	}
	return &AssertionError{
		Type:     typ,
		Expected: fmt.Sprintf(expected, a.Values),
		Actual:   fmt.Sprintf(actual, wrong),
	}
}

func assertFirstPrimes(s *sieve.Sieve, a Assertion) error {
	got := make([]int, 0, len(a.Values))
	for p := range s.Primes() {
		if len(got) == len(a.Values) {
			break
		}
		got = append(got, p)
	}
	if !slices.Equal(got, a.Values) {
		return &AssertionError{
			Type:     AssertFirstPrimes,
			Expected: fmt.Sprintf("sequence starting %v", a.Values),
			Actual:   fmt.Sprintf("sequence starting %v", got),
		}
	}
	return nil
}

func assertValid(s *sieve.Sieve, a Assertion) error {
	if a.Valid == nil {
		return fmt.Errorf("valid is required for %s", AssertValid)
	}
	if got := reference.Validate(s.Limit(), s.Count()); got != *a.Valid {
		return &AssertionError{
			Type:     AssertValid,
			Expected: fmt.Sprintf("valid=%t for limit %d", *a.Valid, s.Limit()),
			Actual:   fmt.Sprintf("valid=%t with count %d", got, s.Count()),
		}
	}
	return nil
}
