package pgmeanpayoff

import "github.com/katalvlaran/paritygames/pgcore"

// Inf is the finite sentinel standing in for +-infinity during value
// iteration; same role and magnitude as pgobsolete.MeanPayoffInf, kept as
// a separate constant so this package stays self-contained.
const Inf int64 = 1 << 60

// Weights returns mu[v] = (-n)^priority(v) for every vertex of g, the
// mean-payoff reduction weight shared with pgobsolete's mean-payoff
// lookahead.
func Weights(g *pgcore.Graph) []int64 {
	n := g.N()
	mu := make([]int64, n)
	for v := 0; v < n; v++ {
		mu[v] = pgcore.Power(int64(-n), g.Priority(v))
	}
	return mu
}

// Solve determines the winner of every vertex in a single strongly
// connected subset scc of g and records it into w. Edges leaving scc are
// treated as already decided: w must already hold a winner for every
// vertex outside scc that scc has a live edge into (the caller solves
// components in descending-rank order, so this always holds by the time
// a component is solved).
//
// A singleton component without a self-loop has no internal cycle to
// iterate at all — there is no mean payoff to accumulate, so its owner
// unconditionally loses, regardless of where its one live edge leads
// (spec.md §4.4, property P6). Solve special-cases it instead of running
// the general iteration — the "singleton-SCC rule".
func Solve(g *pgcore.Graph, scc []int, mu []int64, w pgcore.Winners) {
	inSCC := make(map[int]bool, len(scc))
	for _, v := range scc {
		inSCC[v] = true
	}

	if len(scc) == 1 {
		v := scc[0]
		if hasSelfLoop(g, v) {
			classify(w, v, mu[v])
		} else {
			w.Set(v, g.Owner(v).Opponent())
		}
		return
	}

	n := int64(len(scc))
	maxAbsMu := maxAbsWeight(scc, mu)
	threshold := 2 * n * maxAbsMu
	rounds := 4*n*n*maxAbsMu + 1

	value := make(map[int]int64, len(scc))
	declared := make(map[int]pgcore.Player, len(scc))
	for _, v := range scc {
		value[v] = 0
	}

	// Value iteration runs for 4n^2N+1 rounds (N = max|mu| over the
	// component), the Zwick-Paterson bound that guarantees the sign of
	// every vertex's running value has stabilized by the time it stops.
	// A vertex whose running value crosses +-2nN is declared immediately
	// and that declaration sticks for the rest of the iteration — the
	// value can keep moving, but never back across the threshold.
	for i := int64(0); i < rounds && len(declared) < len(scc); i++ {
		next := make(map[int]int64, len(scc))
		for _, v := range scc {
			if _, done := declared[v]; done {
				next[v] = value[v]
				continue
			}
			best, hasSucc := bestSuccessorValue(g, v, inSCC, value, w)
			switch {
			case !hasSucc:
				next[v] = value[v]
			case best == Inf || best == -Inf:
				next[v] = int64(g.Epsilon(v)) * best
			default:
				next[v] = int64(g.Epsilon(v))*best + mu[v]
			}
		}
		value = next
		for _, v := range scc {
			if _, done := declared[v]; done {
				continue
			}
			switch {
			case value[v] > threshold:
				declared[v] = pgcore.PlayerTwo
			case value[v] < -threshold:
				declared[v] = pgcore.PlayerOne
			}
		}
	}

	for _, v := range scc {
		if winner, ok := declared[v]; ok {
			w.Set(v, winner)
			continue
		}
		classify(w, v, value[v])
	}
}

// maxAbsWeight returns N = max|mu[v]| over the component, the magnitude
// the 4n^2N+1 round count and +-2nN declare threshold both scale with.
func maxAbsWeight(scc []int, mu []int64) int64 {
	var maxAbs int64
	for _, v := range scc {
		m := mu[v]
		if m < 0 {
			m = -m
		}
		if m > maxAbs {
			maxAbs = m
		}
	}
	return maxAbs
}

// bestSuccessorValue folds every live successor of v into the value its
// owner would pick: epsilon(v)*value[u] for an in-component successor,
// epsilon(v) times the already-resolved cross sentinel otherwise.
func bestSuccessorValue(g *pgcore.Graph, v int, inSCC map[int]bool, value map[int]int64, w pgcore.Winners) (int64, bool) {
	var best int64
	hasSucc := false
	g.ForEachSuccessor(v, func(u int) bool {
		var val int64
		if inSCC[u] {
			val = int64(g.Epsilon(v)) * value[u]
		} else {
			val = int64(g.Epsilon(v)) * crossSentinel(w, u)
		}
		if !hasSucc || val > best {
			best = val
			hasSucc = true
		}
		return true
	})
	return best, hasSucc
}

func hasSelfLoop(g *pgcore.Graph, v int) bool {
	found := false
	g.ForEachSuccessor(v, func(u int) bool {
		if u == v {
			found = true
			return false
		}
		return true
	})
	return found
}

// crossSentinel maps an already-resolved neighbor's winner to the signed
// infinity a mean-payoff play effectively achieves by stepping into it:
// +Inf if P2 already owns that outcome, -Inf if P1 does.
func crossSentinel(w pgcore.Winners, u int) int64 {
	switch w[u] {
	case pgcore.PlayerTwo:
		return Inf
	case pgcore.PlayerOne:
		return -Inf
	default:
		return 0
	}
}

// classify assigns v's winner from the sign of its mean-payoff value:
// positive favors the maximizer (P2), negative the minimizer (P1). Zero
// cannot occur once every vertex has a non-zero mu weight, which holds
// for (-n)^priority whenever n >= 1.
func classify(w pgcore.Winners, v int, value int64) {
	if value >= 0 {
		w.Set(v, pgcore.PlayerTwo)
	} else {
		w.Set(v, pgcore.PlayerOne)
	}
}
