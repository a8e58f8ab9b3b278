package bench

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/primesieve/internal/sieve"
	"github.com/roach88/primesieve/internal/testutil"
)

func newTestRunner(step time.Duration) (*Runner, *testutil.StepClock) {
	clock := testutil.NewStepClock(step)
	return &Runner{
		Clock:  clock,
		IDs:    testutil.NewFixedIDGenerator("run-test"),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, clock
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1_000_000, cfg.Limit)
	assert.Equal(t, 10*time.Second, cfg.Duration)
	assert.False(t, cfg.ShowResults)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"ok", Config{Limit: 2, Duration: time.Nanosecond}, ""},
		{"limit too small", Config{Limit: 1, Duration: time.Second}, "invalid limit 1"},
		{"limit too large", Config{Limit: sieve.MaxLimit + 1, Duration: time.Second}, "invalid limit"},
		{"zero duration", Config{Limit: 100, Duration: 0}, "invalid duration"},
		{"negative duration", Config{Limit: 100, Duration: -time.Second}, "invalid duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRun_CountsPassesUntilDeadline(t *testing.T) {
	runner, clock := newTestRunner(250 * time.Millisecond)

	result, err := runner.Run(context.Background(), Config{Limit: 1000, Duration: time.Second})
	require.NoError(t, err)

	// Reads: start, then one check per pass at 250ms, 500ms, 750ms, and the
	// final check at 1s.
	assert.Equal(t, 3, result.Passes)
	assert.Equal(t, time.Second, result.Elapsed)
	assert.Equal(t, int64(5), clock.Reads())
	assert.Equal(t, "run-test", result.RunID)
	assert.Equal(t, 1000, result.Limit)
	assert.Equal(t, 168, result.Count)
	assert.True(t, result.Valid)
	require.NotNil(t, result.Sieve)
	assert.Equal(t, 168, result.Sieve.Count())
}

func TestRun_FinalPassMayOverrun(t *testing.T) {
	// A step larger than the budget still completes exactly one pass.
	runner, _ := newTestRunner(3 * time.Second)

	result, err := runner.Run(context.Background(), Config{Limit: 100, Duration: 5 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Passes)
	assert.Equal(t, 6*time.Second, result.Elapsed)
	assert.Greater(t, result.Elapsed, 5*time.Second)
}

func TestRun_UnknownLimitIsNotValid(t *testing.T) {
	runner, _ := newTestRunner(time.Second)

	result, err := runner.Run(context.Background(), Config{Limit: 1234, Duration: 2 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, 202, result.Count)
	assert.False(t, result.Valid)
}

func TestRun_LimitTenIsReportedInvalid(t *testing.T) {
	runner, _ := newTestRunner(time.Second)

	result, err := runner.Run(context.Background(), Config{Limit: 10, Duration: 2 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Count)
	assert.False(t, result.Valid)
}

func TestRun_InvalidConfig(t *testing.T) {
	runner, clock := newTestRunner(time.Second)

	_, err := runner.Run(context.Background(), Config{Limit: 1, Duration: time.Second})
	require.Error(t, err)
	assert.Equal(t, int64(0), clock.Reads(), "clock must not be read for an invalid config")
}

func TestRun_CancelledBeforeFirstPass(t *testing.T) {
	runner, _ := newTestRunner(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := runner.Run(ctx, DefaultConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, result)
}

// cancellingClock cancels a context once it has been read a given number of
// times.
type cancellingClock struct {
	*testutil.StepClock
	after  int64
	cancel context.CancelFunc
}

func (c *cancellingClock) Now() time.Time {
	t := c.StepClock.Now()
	if c.StepClock.Reads() >= c.after {
		c.cancel()
	}
	return t
}

func TestRun_CancelledMidRunReportsCompletedPasses(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner, _ := newTestRunner(time.Millisecond)
	runner.Clock = &cancellingClock{
		StepClock: testutil.NewStepClock(time.Millisecond),
		after:     4,
		cancel:    cancel,
	}

	result, err := runner.Run(ctx, Config{Limit: 1000, Duration: time.Hour})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Passes)
	assert.Equal(t, 3*time.Millisecond, result.Elapsed)
	assert.Equal(t, 168, result.Count)
}

func TestRun_NilLogger(t *testing.T) {
	runner, _ := newTestRunner(time.Second)
	runner.Logger = nil

	result, err := runner.Run(context.Background(), Config{Limit: 100, Duration: 2 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, 25, result.Count)
}

func TestRun_EachPassUsesFreshSieve(t *testing.T) {
	runner, _ := newTestRunner(time.Second)

	first, err := runner.Run(context.Background(), Config{Limit: 100, Duration: 2 * time.Second})
	require.NoError(t, err)
	second, err := runner.Run(context.Background(), Config{Limit: 100, Duration: 2 * time.Second})
	require.NoError(t, err)

	assert.NotSame(t, first.Sieve, second.Sieve)
	assert.Equal(t, slices.Collect(first.Sieve.Primes()), slices.Collect(second.Sieve.Primes()))
}

func TestResult_AverageSeconds(t *testing.T) {
	r := &Result{Passes: 4, Elapsed: 10 * time.Second}
	assert.Equal(t, 2.5, r.AverageSeconds())

	r = &Result{Passes: 3, Elapsed: 10 * time.Second}
	assert.Equal(t, 10.0/3, r.AverageSeconds())
	assert.Equal(t, 3.3333333333333335, r.Summary().AverageSeconds)

	assert.Equal(t, 0.0, (&Result{}).AverageSeconds())
}

func TestResult_Summary(t *testing.T) {
	r := &Result{
		RunID:   "run-1",
		Passes:  4,
		Elapsed: 10 * time.Second,
		Limit:   1000000,
		Count:   78498,
		Valid:   true,
	}
	assert.Equal(t, Summary{
		RunID:          "run-1",
		Passes:         4,
		ElapsedSeconds: 10,
		AverageSeconds: 2.5,
		Limit:          1000000,
		Count:          78498,
		Valid:          true,
	}, r.Summary())
}

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}
	a := gen.Generate()
	b := gen.Generate()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
	assert.Equal(t, byte('7'), a[14], "version nibble")
}

func TestWallClock_Monotonic(t *testing.T) {
	c := WallClock{}
	a := c.Now()
	b := c.Now()
	assert.GreaterOrEqual(t, b.Sub(a), time.Duration(0))
}
