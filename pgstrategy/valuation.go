package pgstrategy

import "github.com/katalvlaran/paritygames/pgcore"

// Valuation is the outcome of evaluating a fixed strategy pair from a
// vertex (spec.md §4.5's Val[x]): either the play is infinite, in which
// case Infinite names the winner its cycle forces and L is unused, or
// the play terminates at a P2-owned vertex that chose to quit, in which
// case Infinite is pgcore.PlayerUnknown and L[p] counts how many times
// priority p was seen on the finite prefix leading there.
//
// Quit is the valuation of the quit sentinel itself: a finite play with
// an empty count vector, distinct from any terminated-play valuation
// (which always has at least one nonzero entry in L, at the priority it
// terminated on).
type Valuation struct {
	Infinite pgcore.Player
	L        []int
	quit     bool
}

// Quit is the sentinel successor: switching a P2-owned vertex to Quit
// means it plays σ[x] = −1, terminating the play there instead of
// continuing into the subgraph.
const Quit = -1

// quitValuation returns the valuation of the quit sentinel, sized so its
// (all-zero) L is comparable against any other valuation computed for
// the same subgraph.
func quitValuation(maxPriority int) Valuation {
	return Valuation{Infinite: pgcore.PlayerUnknown, L: make([]int, maxPriority+1), quit: true}
}

// Strategy is the pair (σ, τ) flattened into one map: Strategy[v] is the
// chosen successor for v, or Quit for a P2-owned vertex that currently
// quits. P1-owned vertices never quit.
type Strategy map[int]int

// Resolved marks a vertex outside the current subgraph whose winner is
// already known, folding in as an immediate infinite valuation rather
// than a successor to keep following.
type Resolved map[int]pgcore.Player

const (
	stateUnseen int8 = iota
	stateActive
	stateDone
)

// EvaluateAll computes Val[x] for every x in vertices under the fixed
// strategy strat, per spec.md §4.5's evaluate(). A fixed strategy turns
// vertices into a functional graph (each vertex has exactly one "next"),
// so each weakly-connected component is a path leading into a cycle, a
// quit, or an already-resolved vertex. walk follows that path forward
// with three-state memoization (unseen/in-progress/done) until it hits
// one of those three endpoints, then unwinds the path it built back to
// front, folding each vertex's own priority onto whatever its successor
// ended up with. Every returned finite valuation's L is sized to M+1,
// M = max priority among vertices (spec.md §4.5's M), so callers can
// compare valuations computed in the same call positionally.
func EvaluateAll(g *pgcore.Graph, vertices []int, strat Strategy, resolved Resolved) map[int]Valuation {
	maxPriority := g.MaxPriority(vertices)
	state := make(map[int]int8, len(vertices))
	for _, v := range vertices {
		state[v] = stateUnseen
	}
	memo := make(map[int]Valuation, len(vertices))

	walk := func(start int) {
		var path []int
		pos := make(map[int]int)

		v := start
		for {
			if r, isResolved := resolved[v]; isResolved {
				memo[v] = Valuation{Infinite: r}
				break
			}
			if state[v] == stateDone {
				break
			}
			if state[v] == stateActive {
				// Revisiting a vertex already on this walk's path closes
				// the cycle path[pos[v]:] (rule 2).
				closeCycle(g, path[pos[v]:], memo, state)
				break
			}

			state[v] = stateActive
			pos[v] = len(path)
			path = append(path, v)

			next, ok := strat[v]
			if !ok || next == Quit {
				// Rule 1: σ[x] = −1 at a P2-owned vertex, or a vertex
				// with no recorded choice (a dead end outside any live
				// strategy) — a finite play terminating here.
				l := make([]int, maxPriority+1)
				l[g.Priority(v)] = 1
				memo[v] = Valuation{L: l}
				state[v] = stateDone
				break
			}
			v = next
		}

		// Unwind: every vertex still on path (not already finalized by
		// closeCycle above) inherits its successor's now-known valuation,
		// folded through its own priority (rule 3).
		for i := len(path) - 1; i >= 0; i-- {
			u := path[i]
			if state[u] == stateDone {
				continue
			}
			nxt := strat[u]
			var succVal Valuation
			if r, isResolved := resolved[nxt]; isResolved {
				succVal = Valuation{Infinite: r}
			} else {
				succVal = memo[nxt]
			}
			memo[u] = foldThrough(g, u, succVal, maxPriority)
			state[u] = stateDone
		}
	}

	for _, v := range vertices {
		if state[v] == stateUnseen {
			walk(v)
		}
	}
	return memo
}

// foldThrough implements evaluate()'s rule 3 when a vertex's successor
// already has a computed valuation: an infinite valuation passes its
// winner straight through, a finite one gains one more priority-p count
// at the current vertex.
func foldThrough(g *pgcore.Graph, v int, succVal Valuation, maxPriority int) Valuation {
	if succVal.Infinite != pgcore.PlayerUnknown {
		return Valuation{Infinite: succVal.Infinite}
	}
	l := make([]int, maxPriority+1)
	copy(l, succVal.L)
	l[g.Priority(v)]++
	return Valuation{Infinite: pgcore.PlayerUnknown, L: l}
}

// closeCycle assigns every vertex on a just-discovered cycle its
// Valuation: the winner is decided by the parity of the cycle's highest
// priority (rule 2 of spec.md §4.5's evaluate: odd -> P1, even -> P2).
func closeCycle(g *pgcore.Graph, cycle []int, memo map[int]Valuation, state map[int]int8) {
	maxPriority := g.MaxPriority(cycle)
	winner := pgcore.PlayerOne
	if maxPriority%2 == 0 {
		winner = pgcore.PlayerTwo
	}

	for _, v := range cycle {
		memo[v] = Valuation{Infinite: winner}
		state[v] = stateDone
	}
}
