// Command pgbench runs all three solvers against a directory of
// PGSolver text-format games and writes an xlsx report, the CLI
// counterpart of benchmarkTests.c's benchmarkTestSet.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/paritygames/pgbench"
	"github.com/katalvlaran/paritygames/pgio"
)

func main() {
	dir := flag.String("dir", ".", "directory of PGSolver text-format test files")
	out := flag.String("out", "report.xlsx", "path to write the xlsx report to")
	maxFiles := flag.Int("max-files", 0, "maximum number of files to benchmark (0 = all)")
	workers := flag.Int("workers", 4, "maximum number of files benchmarked concurrently")
	flag.Parse()

	results, err := pgbench.RunSet(context.Background(), *dir, pgio.DefaultCaps, *maxFiles, *workers)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pgbench:", err)
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pgbench:", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := pgbench.WriteReport(f, results); err != nil {
		fmt.Fprintln(os.Stderr, "pgbench:", err)
		os.Exit(1)
	}

	disagreements := 0
	for _, r := range results {
		if r.Disagreement {
			disagreements++
		}
	}
	fmt.Printf("benchmarked %d files (%d disagreements), report written to %s\n", len(results), disagreements, *out)
}
