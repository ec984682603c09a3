package pgsolve

import (
	"sort"

	"github.com/katalvlaran/paritygames/pgcore"
	"github.com/katalvlaran/paritygames/pgmeanpayoff"
	"github.com/katalvlaran/paritygames/pgobsolete"
	"github.com/katalvlaran/paritygames/pgreach"
	"github.com/katalvlaran/paritygames/pgscc"
	"github.com/katalvlaran/paritygames/pgstrategy"
)

// componentSolver solves one strongly connected component in place,
// recording every one of its vertices' winners into w; it may assume any
// vertex g has a live edge to outside the component already has its
// winner recorded in w.
type componentSolver func(g *pgcore.Graph, scc []int, w pgcore.Winners)

// SolveA solves g with the mean-payoff reduction of Algorithm A. g is
// mutated in place (obsolete edges are pruned); callers that need the
// original graph afterward should pass g.Clone().
func SolveA(g *pgcore.Graph) pgcore.Winners {
	mu := pgmeanpayoff.Weights(g)
	comb := pgobsolete.NewMeanPayoffCombinator(mu)
	solve := func(g *pgcore.Graph, scc []int, w pgcore.Winners) {
		pgmeanpayoff.Solve(g, scc, mu, w)
	}
	return solveByComponents(g, pgobsolete.MeanPayoffInf, comb, solve)
}

// SolveB solves g with the parity-native obsolete-edge pruning of
// Algorithm B. g is mutated in place; callers that need the original
// graph afterward should pass g.Clone().
func SolveB(g *pgcore.Graph) pgcore.Winners {
	comb := pgobsolete.NewParityCombinator()
	solve := func(g *pgcore.Graph, scc []int, w pgcore.Winners) {
		pgstrategy.Solve(g, scc, resolvedFrom(w), w)
	}
	return solveByComponents(g, pgobsolete.ParityInf, comb, solve)
}

// SolveC solves g with Algorithm C: pure whole-graph strategy
// improvement. It performs no obsolete-edge pruning and does not mutate
// g's adjacency.
func SolveC(g *pgcore.Graph) pgcore.Winners {
	n := g.N()
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	w := pgcore.NewWinners(n)
	pgstrategy.Solve(g, all, pgstrategy.Resolved{}, w)
	return w
}

// solveByComponents is the shared Algorithm A/B driver: prune to
// fixpoint, decompose the still-unresolved vertices into strongly
// connected components, solve the most sink-like one (highest rank, per
// pgscc.Decompose), extend the winner map with both players' attractors,
// and repeat until every vertex is resolved.
func solveByComponents(g *pgcore.Graph, inf int64, comb pgobsolete.Combinator, solve componentSolver) pgcore.Winners {
	n := g.N()
	w := pgcore.NewWinners(n)
	live := make([]int, n)
	for i := range live {
		live[i] = i
	}

	for len(live) > 0 {
		pgobsolete.PruneToFixpoint(g, n, inf, comb)

		comps := pgscc.Decompose(g, live)
		sort.Slice(comps, func(i, j int) bool { return comps[i].Rank > comps[j].Rank })
		top := comps[0]

		solve(g, top.Vertices, w)

		pgreach.Reach(g, w, pgcore.PlayerOne)
		pgreach.Reach(g, w, pgcore.PlayerTwo)

		live = unresolved(w, live)
	}

	return w
}

func unresolved(w pgcore.Winners, candidates []int) []int {
	out := candidates[:0:0]
	for _, v := range candidates {
		if w[v] == pgcore.PlayerUnknown {
			out = append(out, v)
		}
	}
	return out
}

func resolvedFrom(w pgcore.Winners) pgstrategy.Resolved {
	r := make(pgstrategy.Resolved, len(w))
	for v, p := range w {
		if p != pgcore.PlayerUnknown {
			r[v] = p
		}
	}
	return r
}
