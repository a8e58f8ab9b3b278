package bench

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteText writes the one-line benchmark report in the reference harness
// format:
//
//	Passes: 3, Time: 1.0, Avg: 0.3333333333333333, Limit: 1000, Count: 168, Valid: True
//
// The report is preceded by a line holding the enumerated primes, each
// followed by ", ", when showResults is set, and by an empty line otherwise.
func WriteText(w io.Writer, r *Result, showResults bool) error {
	bw := bufio.NewWriter(w)

	if showResults && r.Sieve != nil {
		for p := range r.Sieve.Primes() {
			bw.WriteString(strconv.Itoa(p))
			bw.WriteString(", ")
		}
	}
	bw.WriteByte('\n')

	fmt.Fprintf(bw, "Passes: %d, Time: %s, Avg: %s, Limit: %d, Count: %d, Valid: %s\n",
		r.Passes,
		formatSeconds(r.Elapsed.Seconds()),
		formatSeconds(r.AverageSeconds()),
		r.Limit,
		r.Count,
		formatBool(r.Valid),
	)
	return bw.Flush()
}

// formatSeconds renders sec as the shortest decimal that round-trips, always
// with a fractional part.
func formatSeconds(sec float64) string {
	s := strconv.FormatFloat(sec, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
