// Package pgscc decomposes a subset of a parity game's vertices into
// strongly connected components, ranked so that SCCs with no outgoing
// inter-component edge (within the subset) receive the highest rank.
//
// The decomposition follows Gabow's path-based algorithm: a path stack of
// vertices currently being explored, and a second stack of candidate SCC
// roots whose preorder numbers bound which vertices on the path are still
// reachable from each other. This is the same construction spec.md §4.1
// describes in array form (its v[1..i]/m[1..i] pair); Gabow's two explicit
// stacks are the idiomatic Go rendering of it.
//
// Only live (non-obsolete) edges with both endpoints in the requested
// subset are considered; the caller's graph is read-only here — the
// engine never marks edges removed itself.
package pgscc
