package pgcore

import "errors"

// Sentinel errors for the pgcore package.
//
// Callers MUST use errors.Is to branch on these; the messages are not
// part of the contract and may gain context via fmt.Errorf("...: %w", ...)
// at call sites, but the sentinels themselves are never wrapped with
// additional formatting at the point of definition.
var (
	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("pgcore: vertex index out of range")

	// ErrSinkVertex indicates a vertex was built with zero outgoing edges.
	// The no-sinks invariant is load-bearing for every solver in this
	// module; a sink remains whenever a vertex allocated by NewGraph is
	// never given an edge through AddEdge, and Validate reports it with
	// this error.
	ErrSinkVertex = errors.New("pgcore: vertex has no outgoing edges")

	// ErrDuplicateEdge indicates an attempt to add a second edge to the
	// same target from the same source; adjacency must stay duplicate-free.
	ErrDuplicateEdge = errors.New("pgcore: duplicate edge target")

	// ErrNoVertices indicates an operation that requires at least one
	// vertex was invoked on an empty graph.
	ErrNoVertices = errors.New("pgcore: graph has no vertices")
)
