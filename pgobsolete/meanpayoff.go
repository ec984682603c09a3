package pgobsolete

import "github.com/katalvlaran/paritygames/pgcore"

// MeanPayoffInf is the finite sentinel standing in for +-infinity in the
// mean-payoff lookahead. It must stay far enough from any reachable
// mu-weighted partial sum that the "is this actually infinite" guard in
// Step/Obsolete never mistakes a finite value for it; grounded on
// pgSolver1.c's choice of LLONG_MAX-1 for the same purpose, scaled down
// to leave headroom for the additions the recurrence performs.
const MeanPayoffInf int64 = 1 << 60

// MeanPayoffWeights returns mu[v] = (-n)^priority(v) for every vertex,
// the weight the mean-payoff reduction (pgmeanpayoff) and this obsolete
// pass share, per spec.md §4.4.
func MeanPayoffWeights(g *pgcore.Graph) []int64 {
	n := g.N()
	mu := make([]int64, n)
	for v := 0; v < n; v++ {
		mu[v] = pgcore.Power(int64(-n), g.Priority(v))
	}
	return mu
}

// meanPayoffCombinator is the mean-payoff-weighted lookahead grounded on
// pgSolver1.c's mpgObsolete/getEta: each vertex accumulates its own mu
// weight along the path its owner would pick to maximize (for P2) or
// minimize (for P1, via the epsilon sign flip) the running total.
type meanPayoffCombinator struct {
	mu []int64
}

// NewMeanPayoffCombinator builds the obsolete-edge combinator for
// Algorithm A's mean-payoff reduction, using the shared mu weights.
func NewMeanPayoffCombinator(mu []int64) Combinator {
	return meanPayoffCombinator{mu: mu}
}

func (c meanPayoffCombinator) InitialValue(g *pgcore.Graph, v, w int, inf int64) int64 {
	if w == v {
		return 0
	}
	return int64(g.Epsilon(v)) * inf
}

func (c meanPayoffCombinator) BestValue(g *pgcore.Graph, v, w, u int, eta []int64) int64 {
	return int64(g.Epsilon(w)) * eta[u]
}

func (c meanPayoffCombinator) Step(g *pgcore.Graph, v, w int, best int64, hasSucc bool, inf int64) int64 {
	if !hasSucc {
		return int64(g.Epsilon(v)) * inf
	}
	if best != inf && best != -inf {
		return int64(g.Epsilon(w))*best + c.mu[w]
	}
	return int64(g.Epsilon(w)) * best
}

func (c meanPayoffCombinator) Obsolete(g *pgcore.Graph, v, u int, eta []int64, inf int64) bool {
	ev := int64(g.Epsilon(v))
	return ev*eta[u] < -ev*c.mu[v]
}
