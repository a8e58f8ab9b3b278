package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance scenario for one sieve limit.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Limit is the exclusive upper bound to sieve.
	Limit int `yaml:"limit"`

	// Assertions are evaluated in order against the completed sieve.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion checks one property of a completed sieve.
type Assertion struct {
	// Type selects the check:
	// - "count": Count() equals Count
	// - "contains": every value is reported prime
	// - "excludes": no value is reported prime
	// - "first_primes": Primes() starts with exactly Values
	// - "valid": reference validation of the count equals Valid
	Type string `yaml:"type"`

	// Count is the expected prime count (count).
	Count *int `yaml:"count,omitempty"`

	// Values are the numbers to check (contains, excludes, first_primes).
	Values []int `yaml:"values,omitempty"`

	// Valid is the expected reference validation outcome (valid).
	Valid *bool `yaml:"valid,omitempty"`
}

// Assertion type constants.
const (
	AssertCount       = "count"
	AssertContains    = "contains"
	AssertExcludes    = "excludes"
	AssertFirstPrimes = "first_primes"
	AssertValid       = "valid"
)

// LoadScenario reads and parses a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a scenario and checks it against the schema.
// Unknown fields (typos such as "assertion:") are rejected.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := CheckSchema(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// schemaValue converts s to plain values holding only the fields that were
// set, so closed CUE definitions see exactly what the file declared.
func (s *Scenario) schemaValue() map[string]any {
	assertions := make([]any, len(s.Assertions))
	for i, a := range s.Assertions {
		m := map[string]any{"type": a.Type}
		if a.Count != nil {
			m["count"] = *a.Count
		}
		if a.Values != nil {
			values := make([]any, len(a.Values))
			for j, v := range a.Values {
				values[j] = v
			}
			m["values"] = values
		}
		if a.Valid != nil {
			m["valid"] = *a.Valid
		}
		assertions[i] = m
	}
	return map[string]any{
		"name":        s.Name,
		"description": s.Description,
		"limit":       s.Limit,
		"assertions":  assertions,
	}
}
