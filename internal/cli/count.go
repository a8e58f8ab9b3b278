package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/primesieve/internal/reference"
	"github.com/roach88/primesieve/internal/sieve"
)

// CountOptions holds flags for the count command.
type CountOptions struct {
	*RootOptions
	ShowResults bool
}

// CountResult is the outcome of a single sieve pass.
type CountResult struct {
	Limit  int   `json:"limit"`
	Count  int   `json:"count"`
	Valid  bool  `json:"valid"`
	Primes []int `json:"primes,omitempty"`
}

// NewCountCommand creates the count command.
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CountOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "count <limit>",
		Short: "Count the primes below a limit with a single pass",
		Long: `Run the sieve once for the given limit and print the prime count and
whether it matches the reference table. Limits that are not in the table are
reported as not valid.

Examples:
  primes count 1000
  primes count 100 --show-results
  primes count 1000000 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.ShowResults, "show-results", false, "print every prime found")

	return cmd
}

func runCount(cmd *cobra.Command, opts *CountOptions, arg string) error {
	f := newFormatter(opts.RootOptions, cmd)

	limit, err := strconv.Atoi(arg)
	if err != nil {
		_ = f.Error(ErrCodeInvalidArgs, fmt.Sprintf("limit %q is not an integer", arg), nil)
		return WrapExitError(ExitCommandError, "invalid limit", err)
	}

	s, err := sieve.New(limit)
	if err != nil {
		_ = f.Error(ErrCodeInvalidArgs, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid limit", err)
	}
	s.Run()
	f.VerboseLog("sieved limit %d", limit)

	result := CountResult{
		Limit: limit,
		Count: s.Count(),
	}
	result.Valid = reference.Validate(limit, result.Count)
	if opts.ShowResults {
		result.Primes = slices.Collect(s.Primes())
	}

	if opts.Format == "json" {
		return f.Success(result)
	}

	w := cmd.OutOrStdout()
	if opts.ShowResults {
		strs := make([]string, len(result.Primes))
		for i, p := range result.Primes {
			strs[i] = strconv.Itoa(p)
		}
		fmt.Fprintln(w, strings.Join(strs, ", "))
	}
	fmt.Fprintf(w, "Limit: %d, Count: %d, Valid: %s\n", result.Limit, result.Count, formatValid(result.Valid))
	return nil
}

func formatValid(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
