// Command primes benchmarks an odd-only Sieve of Eratosthenes.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/primesieve/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
