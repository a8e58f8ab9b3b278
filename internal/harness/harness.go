package harness

import (
	"fmt"
	"log/slog"

	"github.com/roach88/primesieve/internal/reference"
	"github.com/roach88/primesieve/internal/sieve"
)

// snapshotPrefix is how many leading primes a Snapshot records.
const snapshotPrefix = 10

// Result is the outcome of a scenario.
type Result struct {
	// Pass is true when every assertion held.
	Pass bool `json:"pass"`

	// Errors holds one message per failed assertion.
	Errors []string `json:"errors,omitempty"`

	// Snapshot summarizes what the sieve computed.
	Snapshot Snapshot `json:"snapshot"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{Pass: true, Errors: []string{}}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Run builds and runs the sieve for scenario.Limit and evaluates the
// scenario's assertions against it.
//
// An error is returned only when the sieve cannot be built. Assertion
// failures are reported through Result.
func Run(scenario *Scenario) (*Result, error) {
	s, err := sieve.New(scenario.Limit)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	s.Run()

	result := NewResult()
	for _, msg := range EvaluateAssertions(s, scenario.Assertions) {
		result.AddError(msg)
	}
	result.Snapshot = takeSnapshot(scenario.Name, s)

	slog.Debug("scenario evaluated",
		"scenario", scenario.Name,
		"limit", scenario.Limit,
		"pass", result.Pass,
		"failures", len(result.Errors),
	)
	return result, nil
}

// Snapshot is a deterministic summary of a completed sieve.
type Snapshot struct {
	ScenarioName string `json:"scenario_name"`
	Limit        int    `json:"limit"`
	Count        int    `json:"count"`
	Valid        bool   `json:"valid"`
	FirstPrimes  []int  `json:"first_primes"`
	LastPrime    int    `json:"last_prime"`
}

func takeSnapshot(name string, s *sieve.Sieve) Snapshot {
	snap := Snapshot{
		ScenarioName: name,
		Limit:        s.Limit(),
		Count:        s.Count(),
		FirstPrimes:  []int{},
	}
	snap.Valid = reference.Validate(snap.Limit, snap.Count)
	for p := range s.Primes() {
		if len(snap.FirstPrimes) < snapshotPrefix {
			snap.FirstPrimes = append(snap.FirstPrimes, p)
		}
		snap.LastPrime = p
	}
	return snap
}

// toCanonicalMap converts a Snapshot to a map[string]any for canonical JSON
// serialization.
func (s Snapshot) toCanonicalMap() map[string]any {
	first := make([]any, len(s.FirstPrimes))
	for i, p := range s.FirstPrimes {
		first[i] = p
	}
	return map[string]any{
		"scenario_name": s.ScenarioName,
		"limit":         s.Limit,
		"count":         s.Count,
		"valid":         s.Valid,
		"first_primes":  first,
		"last_prime":    s.LastPrime,
	}
}

// MarshalSnapshot returns the canonical JSON encoding of s.
func MarshalSnapshot(s Snapshot) ([]byte, error) {
	return MarshalCanonical(s.toCanonicalMap())
}
