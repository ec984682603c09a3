package pgcore

// Winners is the winner map W of spec.md §3: one Player per vertex,
// monotonically refined from PlayerUnknown until every entry is resolved.
// A solver's terminal invariant is that no PlayerUnknown remains.
type Winners []Player

// NewWinners returns a Winners slice of length n, every entry
// PlayerUnknown.
func NewWinners(n int) Winners {
	return make(Winners, n)
}

// Resolved reports whether every vertex has a non-unknown winner.
func (w Winners) Resolved() bool {
	for _, p := range w {
		if p == PlayerUnknown {
			return false
		}
	}

	return true
}

// Set assigns the winner of v, but never overwrites an already-known
// winner — this is the monotonicity invariant reach and the subgraph
// solvers both depend on (spec.md §4.2: "never overwrites a winner once
// set").
func (w Winners) Set(v int, p Player) {
	if w[v] == PlayerUnknown {
		w[v] = p
	}
}

// CountByPlayer returns how many vertices are currently won by pl.
func (w Winners) CountByPlayer(pl Player) int {
	n := 0
	for _, p := range w {
		if p == pl {
			n++
		}
	}

	return n
}
