// Package pgstrategy implements the strategy-improvement machinery
// shared by Algorithm B (per-SCC, after obsolete-edge pruning) and
// Algorithm C (whole-graph, no pruning): a positional strategy pair
// (σ, τ) where σ additionally allows a P2-owned vertex to quit, a
// valuation that follows the pair to the cycle or quit it eventually
// reaches, and the five-rule valuation order of spec.md §4.5 that drives
// the nested switching loop to a fixpoint.
//
// A Valuation is either infinite — the parity-game winner its cycle
// forces — or finite: a count vector L, L[p] the number of times
// priority p was seen before the play quit. Quit itself is a finite
// valuation with an empty L, compared against any vertex's valuation by
// its own dedicated rule (§4.5 rule 2) rather than folded into the
// general finite/finite comparison.
package pgstrategy
