package pgstrategy

import "github.com/katalvlaran/paritygames/pgcore"

// Compare orders two valuations from forPlayer's perspective: positive
// means a is strictly preferred to b, negative means b is preferred,
// zero means forPlayer is indifferent (including every case spec.md
// §4.5 calls a tie: identical valuations, two infinite valuations of
// the same parity, or two finite valuations whose L vectors agree at
// every priority). It is the total order of spec.md §4.5's prefer(a, b)
// restated from forPlayer's own side rather than P2's.
func Compare(a, b Valuation, forPlayer pgcore.Player) int {
	return -forPlayer.Epsilon() * preferB(a, b)
}

// Prefer reports whether candidate is strictly better than current for
// forPlayer — the "is this switch profitable" test the improvement loop
// applies to every live successor of a forPlayer-owned vertex, including
// Quit.
func Prefer(candidate, current Valuation, forPlayer pgcore.Player) bool {
	return Compare(candidate, current, forPlayer) > 0
}

// IsSwitchable is Prefer's name as used by the outer improvement loop
// when deciding whether to replace a vertex's recorded strategy choice.
func IsSwitchable(candidate, current Valuation, forPlayer pgcore.Player) bool {
	return Prefer(candidate, current, forPlayer)
}

// preferB implements spec.md §4.5's prefer(a, b) literally: +1 if P2
// prefers b to a, −1 if P1 prefers b to a, 0 if neither (a tie),
// evaluated in the rule order the spec lists.
func preferB(a, b Valuation) int {
	// Rule 1.
	if a.quit && b.quit {
		return 0
	}
	// Rule 2: comparison against quit.
	if a.quit {
		return quitVsVertex(b)
	}
	if b.quit {
		return -quitVsVertex(a)
	}
	// Rules 3 and 4 collapse into one rank comparison: P2's preference
	// order over outcomes is even-infinite > finite > odd-infinite, and
	// two infinite valuations of equal parity are a tie under it too.
	if a.Infinite != pgcore.PlayerUnknown || b.Infinite != pgcore.PlayerUnknown {
		return sign(rank(b) - rank(a))
	}
	// Rule 5: both finite.
	return compareFiniteL(a.L, b.L)
}

// quitVsVertex implements rule 2 directly: the predicate prefer(quit, y).
func quitVsVertex(y Valuation) int {
	switch y.Infinite {
	case pgcore.PlayerOne:
		// Odd cycle: quit is better for P2 than y, i.e. P1 prefers y.
		return -1
	case pgcore.PlayerTwo:
		// Even cycle: y is better for P2 than quit.
		return 1
	default:
		p := largestNonzero(y.L)
		if p < 0 {
			return 0
		}
		if p%2 == 0 {
			return 1
		}
		return -1
	}
}

// rank gives P2's preference order over outcome kinds for rules 3/4:
// an even-parity infinite valuation is best for P2, odd-parity worst,
// and a finite one strictly in between.
func rank(v Valuation) int {
	switch v.Infinite {
	case pgcore.PlayerTwo:
		return 2
	case pgcore.PlayerOne:
		return 0
	default:
		return 1
	}
}

// compareFiniteL implements rule 5: scan p from the top down for the
// largest priority where the two count vectors disagree; at an even p
// the smaller count is preferred by P2, at an odd p the larger count is.
func compareFiniteL(la, lb []int) int {
	n := len(la)
	if len(lb) > n {
		n = len(lb)
	}
	for p := n - 1; p >= 0; p-- {
		av, bv := valAt(la, p), valAt(lb, p)
		if av == bv {
			continue
		}
		if p%2 == 0 {
			if bv < av {
				return 1
			}
			return -1
		}
		if bv > av {
			return 1
		}
		return -1
	}
	return 0
}

func largestNonzero(l []int) int {
	for p := len(l) - 1; p >= 0; p-- {
		if l[p] != 0 {
			return p
		}
	}
	return -1
}

func valAt(l []int, p int) int {
	if p < len(l) {
		return l[p]
	}
	return 0
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
