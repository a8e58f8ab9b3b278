package cli

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/primesieve/internal/reference"
)

// ReferenceEntry is one row of the reference table.
type ReferenceEntry struct {
	Limit int `json:"limit"`
	Count int `json:"count"`
}

// NewReferenceCommand creates the reference command.
func NewReferenceCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reference",
		Short: "Print the reference prime counts used for validation",
		Long: `Print the table of known prime counts that benchmark results are
validated against. Limits missing from this table always report Valid: False.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReference(cmd, rootOpts)
		},
	}
}

func runReference(cmd *cobra.Command, opts *RootOptions) error {
	limits := reference.Limits()
	entries := make([]ReferenceEntry, 0, len(limits))
	for _, limit := range limits {
		count, _ := reference.Lookup(limit)
		entries = append(entries, ReferenceEntry{Limit: limit, Count: count})
	}

	if opts.Format == "json" {
		return newFormatter(opts, cmd).Success(entries)
	}

	p := message.NewPrinter(language.English)
	w := cmd.OutOrStdout()
	p.Fprintf(w, "%13s  %9s\n", "Limit", "Count")
	for _, e := range entries {
		p.Fprintf(w, "%13d  %9d\n", e.Limit, e.Count)
	}
	return nil
}
