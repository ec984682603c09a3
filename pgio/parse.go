package pgio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/paritygames/pgcore"
)

// Caps bounds the graphs Parse is willing to accept, mirroring the
// nMax/pMax parameters createPG takes so that a reimplementation stays
// bound to the same "operating outside the cap is a configuration
// error" contract as the rest of the module.
type Caps struct {
	MaxVertices int
	MaxPriority int
}

// DefaultCaps matches the envelope spec.md documents as the one 64-bit
// arithmetic is guaranteed to suffice within.
var DefaultCaps = Caps{MaxVertices: 1000, MaxPriority: 10}

// Parse reads the PGSolver text format from r: a "parity N;" header
// declaring the highest vertex index, followed by one "v priority owner
// succ1, succ2, ...;" statement per vertex. Statements are delimited by
// ';' rather than by newline, matching the source's writer, which omits
// the trailing separator after its very last line.
func Parse(r io.Reader, caps Caps) (*pgcore.Graph, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	statements := splitStatements(string(raw))
	if len(statements) == 0 {
		return nil, ErrEmptyInput
	}

	n, err := parseHeader(statements[0])
	if err != nil {
		return nil, err
	}
	if n > caps.MaxVertices {
		return nil, ErrVertexCountExceeded
	}

	g := pgcore.NewGraph(n)
	seen := make([]bool, n)

	for _, stmt := range statements[1:] {
		v, priority, owner, succs, err := parseVertexLine(stmt)
		if err != nil {
			return nil, err
		}
		if priority > caps.MaxPriority {
			return nil, ErrPriorityExceeded
		}
		if v < 0 || v >= n {
			return nil, ErrVertexIndexOutOfRange
		}
		if seen[v] {
			return nil, fmt.Errorf("%w: vertex %d", ErrDuplicateVertexLine, v)
		}
		seen[v] = true

		g.SetVertex(v, pgcore.Player(2-owner), priority)
		for _, s := range succs {
			if s < 0 || s >= n {
				return nil, fmt.Errorf("%w: vertex %d edge to %d", ErrVertexIndexOutOfRange, v, s)
			}
			if err := g.AddEdge(v, s); err != nil {
				return nil, err
			}
		}
	}

	for v := 0; v < n; v++ {
		if !seen[v] {
			return nil, fmt.Errorf("%w: vertex %d", ErrMissingVertexLine, v)
		}
	}

	return g, nil
}

// splitStatements splits on ';' and discards empty (whitespace-only)
// segments, including the trailing one a well-formed file produces.
func splitStatements(input string) []string {
	parts := strings.Split(input, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseHeader parses "parity N" and returns N+1, the number of vertices
// (vertex indices run 0..N inclusive).
func parseHeader(stmt string) (int, error) {
	fields := strings.Fields(stmt)
	if len(fields) != 2 || fields[0] != "parity" {
		return 0, ErrMalformedHeader
	}
	last, err := strconv.Atoi(fields[1])
	if err != nil || last < 0 {
		return 0, ErrMalformedHeader
	}
	return last + 1, nil
}

// parseVertexLine parses "v priority owner s1, s2, ...".
func parseVertexLine(stmt string) (v, priority, owner int, succs []int, err error) {
	fields := strings.Fields(stmt)
	if len(fields) < 3 {
		return 0, 0, 0, nil, ErrMalformedVertexLine
	}

	if v, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, 0, nil, ErrMalformedVertexLine
	}
	if priority, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, 0, nil, ErrMalformedVertexLine
	}
	if owner, err = strconv.Atoi(fields[2]); err != nil || (owner != 0 && owner != 1) {
		return 0, 0, 0, nil, ErrMalformedVertexLine
	}

	for _, tok := range fields[3:] {
		tok = strings.TrimSuffix(strings.TrimSpace(tok), ",")
		if tok == "" {
			continue
		}
		s, convErr := strconv.Atoi(tok)
		if convErr != nil {
			return 0, 0, 0, nil, ErrMalformedVertexLine
		}
		succs = append(succs, s)
	}

	if len(succs) == 0 {
		return 0, 0, 0, nil, fmt.Errorf("%w: vertex %d", ErrSinkVertex, v)
	}

	return v, priority, owner, succs, nil
}
