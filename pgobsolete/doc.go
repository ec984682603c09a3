// Package pgobsolete detects and prunes "obsolete" edges: outgoing edges
// whose owner can prove, via an n-step lookahead, are never better than
// the vertex's own priority term. Two independent lookahead recurrences
// are provided — a mean-payoff-weighted one for Algorithm A and a
// parity-native one for Algorithm B — sharing one generic fixpoint engine
// (spec.md §9: "factor the per-step combinator... as parameters to one
// generic engine").
//
// Both drivers repeatedly compute the current obsolete-edge set, mark
// those edges removed on the graph, and recompute; they stop the first
// pass that finds nothing new. Removal only ever flips the graph's
// removed bitmap (see pgcore.Graph.RemoveEdge) — adjacency is never
// compacted, so every other engine's vertex indices stay stable across a
// pruning pass.
package pgobsolete
