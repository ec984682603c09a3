// Package pgbench runs all three solvers against a directory of
// PGSolver text-format games and reports timings and cross-algorithm
// agreement, grounded on benchmarkTests.c's oneFileBenchmark and
// benchmarkTestSet: parse once, duplicate the graph once per solver (a
// goroutine-parallel pgcore.Graph.Clone() standing in for the source's
// duplicateGraph), time each solve, and record the result in a
// spreadsheet row via excelize — a Go equivalent of the source's
// libxlsxwriter-based report, replacing the source's wall-clock
// time(&start)/time(&end) pair with a context-free time.Since duration.
package pgbench
