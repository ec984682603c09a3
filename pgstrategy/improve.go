package pgstrategy

import "github.com/katalvlaran/paritygames/pgcore"

// initialStrategy sets up spec.md §4.5's outer-loop starting state:
// σ[x] := quit for every P2-owned vertex, τ[x] := an arbitrary live
// successor for every P1-owned vertex. P1 never quits.
func initialStrategy(g *pgcore.Graph, vertices []int) Strategy {
	strat := make(Strategy, len(vertices))
	for _, v := range vertices {
		if g.Owner(v) == pgcore.PlayerTwo {
			strat[v] = Quit
			continue
		}
		g.ForEachSuccessor(v, func(u int) bool {
			strat[v] = u
			return false
		})
	}
	return strat
}

// valuationOf looks up v's valuation, folding in an already-resolved
// cross-boundary vertex as an immediate infinite valuation instead.
func valuationOf(v int, values map[int]Valuation, resolved Resolved) Valuation {
	if r, ok := resolved[v]; ok {
		return Valuation{Infinite: r}
	}
	return values[v]
}

// switchEdges implements spec.md §4.5's switchEdges(player): for every
// vertex forPlayer owns, compare its current choice's valuation against
// every live successor's own valuation (and, for P2, against quit too),
// adopting the most preferred one found. It reports whether anything
// changed.
func switchEdges(g *pgcore.Graph, vertices []int, strat Strategy, values map[int]Valuation, resolved Resolved, forPlayer pgcore.Player) bool {
	maxPriority := g.MaxPriority(vertices)
	changed := false

	for _, x := range vertices {
		if g.Owner(x) != forPlayer {
			continue
		}

		current := strat[x]
		var currentVal Valuation
		if current == Quit {
			currentVal = quitValuation(maxPriority)
		} else {
			currentVal = valuationOf(current, values, resolved)
		}

		g.ForEachSuccessor(x, func(u int) bool {
			candidateVal := valuationOf(u, values, resolved)
			if Prefer(candidateVal, currentVal, forPlayer) {
				current = u
				currentVal = candidateVal
			}
			return true
		})

		if forPlayer == pgcore.PlayerTwo {
			q := quitValuation(maxPriority)
			if Prefer(q, currentVal, forPlayer) {
				current = Quit
				currentVal = q
			}
		}

		if current != strat[x] {
			strat[x] = current
			changed = true
		}
	}

	return changed
}

// Solve runs strategy improvement to a fixed point over vertices — a
// single strongly connected subset for Algorithm B, or the whole live
// graph for Algorithm C — folding in edges that leave vertices as
// already-decided via resolved, and records each vertex's winner into w.
//
// The outer loop is spec.md §4.5's nested repeat: τ (P1) is driven to a
// fixpoint against the current σ before σ (P2) is allowed a single round
// of switches, and the whole thing repeats until σ stops changing too —
// τ is always locally optimal against σ before σ is improved.
func Solve(g *pgcore.Graph, vertices []int, resolved Resolved, w pgcore.Winners) {
	strat := initialStrategy(g, vertices)
	var values map[int]Valuation

	for {
		for {
			values = EvaluateAll(g, vertices, strat, resolved)
			if !switchEdges(g, vertices, strat, values, resolved, pgcore.PlayerOne) {
				break
			}
		}
		if !switchEdges(g, vertices, strat, values, resolved, pgcore.PlayerTwo) {
			break
		}
	}

	// Winner extraction (spec.md §4.5): x is won by P2 iff Val[x].infinite
	// = 2; every other outcome — an odd-parity cycle, or a finite play
	// that quit — is a P1 win.
	for _, v := range vertices {
		winner := pgcore.PlayerOne
		if values[v].Infinite == pgcore.PlayerTwo {
			winner = pgcore.PlayerTwo
		}
		w.Set(v, winner)
	}
}
