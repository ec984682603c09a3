package pgbench

import "time"

// Result is one row of a benchmark report: a single test file solved by
// all three algorithms.
type Result struct {
	Directory    string
	FileName     string
	Vertices     int
	MaxPriority  int
	EdgeCount    int
	DurationA    time.Duration
	DurationB    time.Duration
	DurationC    time.Duration
	Disagreement bool
	Err          error
}
