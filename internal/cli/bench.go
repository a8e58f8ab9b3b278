package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/primesieve/internal/bench"
)

// BenchOptions holds flags for the bench command.
type BenchOptions struct {
	*RootOptions
	Limit       int
	Duration    time.Duration
	ShowResults bool

	// Runner allows overriding the clock and run IDs (for testing).
	// If nil, bench.NewRunner() is used.
	Runner *bench.Runner
}

// benchOutput is the JSON payload of the bench command.
type benchOutput struct {
	bench.Summary
	Primes []int `json:"primes,omitempty"`
}

// NewBenchCommand creates the bench command.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BenchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the timed sieve benchmark",
		Long: `Sieve the limit repeatedly until the duration has elapsed, then report
the number of passes, total and average time, the prime count, and whether
the count matches the reference table.

The deadline is checked between passes, so the final pass always completes.
An interrupt (Ctrl-C) stops the run after the current pass and reports the
passes completed so far.

Examples:
  primes bench
  primes bench --limit 10000000 --duration 30s
  primes bench --limit 100 --show-results
  primes bench --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", bench.DefaultLimit, "exclusive upper bound to sieve")
	cmd.Flags().DurationVar(&opts.Duration, "duration", bench.DefaultDuration, "wall-clock budget")
	cmd.Flags().BoolVar(&opts.ShowResults, "show-results", false, "print every prime found")

	return cmd
}

func runBench(cmd *cobra.Command, opts *BenchOptions) error {
	cfg := bench.Config{
		Limit:       opts.Limit,
		Duration:    opts.Duration,
		ShowResults: opts.ShowResults,
	}
	f := newFormatter(opts.RootOptions, cmd)

	if err := cfg.Validate(); err != nil {
		reportJSONError(f, ErrCodeInvalidArgs, err)
		return WrapExitError(ExitCommandError, "invalid benchmark configuration", err)
	}

	runner := opts.Runner
	if runner == nil {
		runner = bench.NewRunner()
	}

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := runner.Run(ctx, cfg)
	if err != nil {
		reportJSONError(f, ErrCodeBenchmarkFail, err)
		if errors.Is(err, context.Canceled) {
			return WrapExitError(ExitFailure, "benchmark interrupted before the first pass", err)
		}
		return WrapExitError(ExitFailure, "benchmark failed", err)
	}
	if ctx.Err() != nil {
		slog.Warn("benchmark interrupted, reporting completed passes", "passes", result.Passes)
	}

	if opts.Format == "json" {
		out := benchOutput{Summary: result.Summary()}
		if cfg.ShowResults {
			out.Primes = slices.Collect(result.Sieve.Primes())
		}
		f.TraceID = result.RunID
		return f.Success(out)
	}

	return bench.WriteText(cmd.OutOrStdout(), result, cfg.ShowResults)
}

// reportJSONError writes the error envelope in JSON mode. Text mode leaves
// reporting to main, which prints the returned error.
func reportJSONError(f *OutputFormatter, code string, err error) {
	if f.Format == "json" {
		_ = f.Error(code, err.Error(), nil)
	}
}
