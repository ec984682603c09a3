// Package pgio reads and writes the PGSolver text format (the
// "parity N;" header followed by one line per vertex) used throughout
// the original benchmark corpus. Parsing is grounded on gameGenerator.c's
// createPG: the owner field on the wire is 0 (P2) or 1 (P1) and is
// remapped to the package's internal 1/2 encoding at the parse boundary,
// exactly once, so no other package ever has to think about the wire
// convention.
package pgio
