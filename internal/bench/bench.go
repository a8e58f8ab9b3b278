package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/roach88/primesieve/internal/reference"
	"github.com/roach88/primesieve/internal/sieve"
)

// Defaults match the reference harness.
const (
	DefaultLimit    = 1_000_000
	DefaultDuration = 10 * time.Second
)

// ErrNoPasses is returned when a run ends before completing a single pass.
var ErrNoPasses = errors.New("benchmark completed no passes")

// Config controls a benchmark run.
type Config struct {
	// Limit is the exclusive upper bound sieved on every pass.
	Limit int

	// Duration is the wall-clock budget. Passes start only while the elapsed
	// time is below it.
	Duration time.Duration

	// ShowResults enables enumeration of every prime in the text report.
	ShowResults bool
}

// DefaultConfig returns the reference harness configuration.
func DefaultConfig() Config {
	return Config{
		Limit:    DefaultLimit,
		Duration: DefaultDuration,
	}
}

// Validate checks the configuration before a run.
func (c Config) Validate() error {
	if c.Limit < 2 || c.Limit > sieve.MaxLimit {
		return fmt.Errorf("invalid limit %d: must be between 2 and %d", c.Limit, sieve.MaxLimit)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("invalid duration %s: must be positive", c.Duration)
	}
	return nil
}

// Result is the outcome of a benchmark run.
type Result struct {
	RunID   string
	Passes  int
	Elapsed time.Duration
	Limit   int
	Count   int
	Valid   bool

	// Sieve is the sieve from the final completed pass.
	Sieve *sieve.Sieve
}

// AverageSeconds returns the mean time per pass in seconds. The division is
// done in floating point so no precision is lost to whole nanoseconds.
func (r *Result) AverageSeconds() float64 {
	if r.Passes == 0 {
		return 0
	}
	return r.Elapsed.Seconds() / float64(r.Passes)
}

// Summary is the machine-readable form of a Result.
type Summary struct {
	RunID          string  `json:"run_id"`
	Passes         int     `json:"passes"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	AverageSeconds float64 `json:"average_seconds"`
	Limit          int     `json:"limit"`
	Count          int     `json:"count"`
	Valid          bool    `json:"valid"`
}

// Summary returns r without the sieve, with durations in seconds.
func (r *Result) Summary() Summary {
	return Summary{
		RunID:          r.RunID,
		Passes:         r.Passes,
		ElapsedSeconds: r.Elapsed.Seconds(),
		AverageSeconds: r.AverageSeconds(),
		Limit:          r.Limit,
		Count:          r.Count,
		Valid:          r.Valid,
	}
}

// Runner executes benchmark runs.
type Runner struct {
	Clock  Clock
	IDs    IDGenerator
	Logger *slog.Logger
}

// NewRunner creates a Runner using the wall clock, UUIDv7 run IDs, and the
// default logger.
func NewRunner() *Runner {
	return &Runner{
		Clock:  WallClock{},
		IDs:    UUIDv7Generator{},
		Logger: slog.Default(),
	}
}

// Run sieves cfg.Limit repeatedly until cfg.Duration has elapsed.
//
// ctx is checked between passes only. If it is cancelled after at least one
// pass, the passes completed so far are reported; otherwise its error is
// returned.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runID := r.IDs.Generate()
	logger := r.logger().With("run_id", runID)
	debug := logger.Enabled(ctx, slog.LevelDebug)

	logger.Info("benchmark starting", "limit", cfg.Limit, "duration", cfg.Duration)

	var (
		last    *sieve.Sieve
		passes  int
		elapsed time.Duration
	)
	start := r.Clock.Now()
	for {
		elapsed = r.Clock.Now().Sub(start)
		if elapsed >= cfg.Duration {
			break
		}
		if err := ctx.Err(); err != nil {
			if passes == 0 {
				return nil, err
			}
			logger.Warn("benchmark interrupted", "passes", passes, "elapsed", elapsed)
			break
		}

		s, err := sieve.New(cfg.Limit)
		if err != nil {
			return nil, fmt.Errorf("pass %d: %w", passes+1, err)
		}
		s.Run()
		last = s
		passes++

		if debug {
			logger.Debug("pass completed", "pass", passes)
		}
	}

	if last == nil {
		return nil, ErrNoPasses
	}

	count := last.Count()
	result := &Result{
		RunID:   runID,
		Passes:  passes,
		Elapsed: elapsed,
		Limit:   cfg.Limit,
		Count:   count,
		Valid:   reference.Validate(cfg.Limit, count),
		Sieve:   last,
	}

	logger.Info("benchmark finished",
		"passes", result.Passes,
		"elapsed", result.Elapsed,
		"average_seconds", result.AverageSeconds(),
		"count", result.Count,
		"valid", result.Valid,
	)
	return result, nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}
