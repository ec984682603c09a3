package pgio

import "errors"

var (
	// ErrEmptyInput is returned when the input has no header line at all.
	ErrEmptyInput = errors.New("pgio: empty input")
	// ErrMalformedHeader is returned when the first line isn't "parity N;".
	ErrMalformedHeader = errors.New("pgio: malformed header line")
	// ErrVertexCountExceeded is returned when the header declares more
	// vertices than the caller's cap allows.
	ErrVertexCountExceeded = errors.New("pgio: vertex count exceeds cap")
	// ErrPriorityExceeded is returned when a vertex's priority exceeds the
	// caller's cap.
	ErrPriorityExceeded = errors.New("pgio: priority exceeds cap")
	// ErrMalformedVertexLine is returned when a vertex line cannot be
	// parsed into index, priority, owner, and a successor list.
	ErrMalformedVertexLine = errors.New("pgio: malformed vertex line")
	// ErrVertexIndexOutOfRange is returned when a vertex line's own index
	// does not fall within the declared vertex count.
	ErrVertexIndexOutOfRange = errors.New("pgio: vertex index out of range")
	// ErrDuplicateVertexLine is returned when the same vertex index is
	// described by more than one line.
	ErrDuplicateVertexLine = errors.New("pgio: duplicate vertex line")
	// ErrMissingVertexLine is returned when the header declares n vertices
	// but fewer than n lines describe one.
	ErrMissingVertexLine = errors.New("pgio: missing vertex line")
	// ErrSinkVertex is returned when a vertex line lists no successors.
	ErrSinkVertex = errors.New("pgio: vertex has no outgoing edges")
)
