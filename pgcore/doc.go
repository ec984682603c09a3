// Package pgcore defines the central Graph, Vertex and Player types shared
// by every parity-game algorithm in this module, and provides thread-safe
// primitives for building and duplicating games.
//
// A parity game is a finite directed graph without dead-ends: every vertex
// is owned by one of two players and labeled with a non-negative integer
// priority. Vertices are addressed by a dense integer index in [0, n),
// never by string ID — unlike a general-purpose graph library, the solvers
// in this module lean hard on array-indexed access, so pgcore trades the
// generality of a map-based adjacency list for slices indexed by vertex.
//
// Edges are never physically removed once the graph is built. The
// obsolete-edge passes (see the pgobsolete package) only ever flip bits in
// a per-vertex "removed" mask; every traversal in this module must consult
// that mask rather than assume adjacency is compact. This mirrors the
// source algorithm's use of an in-band -1 sentinel, translated into an
// idiomatic Go representation.
package pgcore
