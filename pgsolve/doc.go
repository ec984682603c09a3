// Package pgsolve provides the three top-level solvers: SolveA
// (mean-payoff-game reduction with value iteration per strongly
// connected component), SolveB (parity-native obsolete-edge pruning with
// strategy improvement per component), and SolveC (pure whole-graph
// strategy improvement, no pruning or decomposition). SolveA and SolveB
// share one orchestration loop — prune to fixpoint, decompose into
// strongly connected components, solve the most sink-like component,
// extend the winner map with pgreach, and repeat on whatever remains
// unresolved — differing only in which obsolete-edge combinator and
// which per-component solver they plug in, per spec.md §4.6.
package pgsolve
