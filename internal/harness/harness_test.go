package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/primesieve/internal/sieve"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestRun_AllPass(t *testing.T) {
	result, err := Run(&Scenario{
		Name:  "below-100",
		Limit: 100,
		Assertions: []Assertion{
			{Type: AssertCount, Count: intPtr(25)},
			{Type: AssertContains, Values: []int{2, 97}},
			{Type: AssertExcludes, Values: []int{1, 91, 100}},
			{Type: AssertFirstPrimes, Values: []int{2, 3, 5}},
			{Type: AssertValid, Valid: boolPtr(true)},
		},
	})
	require.NoError(t, err)
	assert.True(t, result.Pass)
	assert.Empty(t, result.Errors)

	assert.Equal(t, Snapshot{
		ScenarioName: "below-100",
		Limit:        100,
		Count:        25,
		Valid:        true,
		FirstPrimes:  []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29},
		LastPrime:    97,
	}, result.Snapshot)
}

func TestRun_ReportsEachFailure(t *testing.T) {
	result, err := Run(&Scenario{
		Name:  "wrong",
		Limit: 100,
		Assertions: []Assertion{
			{Type: AssertCount, Count: intPtr(26)},
			{Type: AssertContains, Values: []int{2, 9, 15}},
			{Type: AssertExcludes, Values: []int{4, 97}},
			{Type: AssertFirstPrimes, Values: []int{2, 5}},
			{Type: AssertValid, Valid: boolPtr(false)},
		},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 5)

	assert.Contains(t, result.Errors[0], "assertions[0]")
	assert.Contains(t, result.Errors[0], "Expected: 26 primes below 100")
	assert.Contains(t, result.Errors[0], "Actual: 25 primes")
	assert.Contains(t, result.Errors[1], "not prime: [9 15]")
	assert.Contains(t, result.Errors[2], "reported prime: [97]")
	assert.Contains(t, result.Errors[3], "sequence starting [2 3]")
	assert.Contains(t, result.Errors[4], "valid=true with count 25")
}

func TestRun_InvalidLimit(t *testing.T) {
	_, err := Run(&Scenario{Name: "bad", Limit: 0})
	require.Error(t, err)
	assert.True(t, sieve.IsLimitError(err))
}

func TestRun_FirstPrimesLongerThanSequence(t *testing.T) {
	result, err := Run(&Scenario{
		Name:       "short",
		Limit:      8,
		Assertions: []Assertion{{Type: AssertFirstPrimes, Values: []int{2, 3, 5, 7, 11}}},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], "sequence starting [2 3 5 7]")
}

func TestRun_LimitTwoSnapshot(t *testing.T) {
	result, err := Run(&Scenario{
		Name:       "two",
		Limit:      2,
		Assertions: []Assertion{{Type: AssertCount, Count: intPtr(0)}},
	})
	require.NoError(t, err)
	assert.True(t, result.Pass)
	assert.Equal(t, []int{}, result.Snapshot.FirstPrimes)
	assert.Equal(t, 0, result.Snapshot.LastPrime)
}

func TestEvaluateAssertions_Malformed(t *testing.T) {
	s, err := sieve.New(10)
	require.NoError(t, err)

	errs := EvaluateAssertions(s, []Assertion{
		{Type: "bogus"},
		{Type: AssertCount},
		{Type: AssertValid},
	})
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0], `unknown assertion type "bogus"`)
	assert.Contains(t, errs[1], "count is required")
	assert.Contains(t, errs[2], "valid is required")
}

func TestAssertionError_Format(t *testing.T) {
	err := &AssertionError{Type: AssertCount, Expected: "1", Actual: "2"}
	assert.Equal(t, "Assertion failed: count\n  Expected: 1\n  Actual: 2", err.Error())
}
