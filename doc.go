// Package paritygames solves parity games: two-player infinite-duration
// games on finite directed graphs, where the winner of an infinite play
// is decided by the parity of the highest vertex priority visited
// infinitely often.
//
// 🎲 What is paritygames?
//
//	Three independent solvers, all agreeing on the winner of every
//	vertex in a well-formed game:
//
//	  • SolveA — reduce each strongly connected component to a
//	    mean-payoff game and solve it by value iteration
//	  • SolveB — prune provably-never-useful edges from the graph, then
//	    solve it component by component by strategy improvement
//	  • SolveC — run strategy improvement over the whole graph
//	    directly, without pruning or decomposition
//
// Everything downstream is built from a small set of shared engines:
//
//	pgcore/       — the graph itself: index-addressed vertices, owners,
//	                priorities, a non-compacting adjacency list
//	pgscc/        — strongly connected component decomposition
//	pgreach/      — the attractor ("reach") engine both players share
//	pgobsolete/   — the two obsolete-edge lookahead recurrences
//	pgmeanpayoff/ — Algorithm A's per-component mean-payoff solver
//	pgstrategy/   — the strategy-improvement machinery Algorithms B/C share
//	pgsolve/      — SolveA, SolveB, SolveC
//	pgio/         — the PGSolver text format, read and write
//	pggen/        — random and bipartite-symmetric test game generators
//	pgbench/      — concurrent cross-algorithm benchmarking, xlsx report
//	pgviz/        — a read-only bridge into the gonum graph ecosystem
//
// A game arrives as a *pgcore.Graph (via pgio.Parse, pggen, or built by
// hand) and leaves as a pgcore.Winners: one entry per vertex, the player
// who wins from it.
//
//	go get github.com/katalvlaran/paritygames
package paritygames
