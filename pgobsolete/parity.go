package pgobsolete

import "github.com/katalvlaran/paritygames/pgcore"

// ParityInf is the finite sentinel standing in for +-infinity in the
// parity-native lookahead; grounded on pgSolver2.c's choice of a value
// distinguishable from any real priority or owner code.
const ParityInf int64 = 1 << 30

// phi sign-flips odd finite values and passes +-infinity through as
// ev*n; grounded verbatim on pgSolver2.c's phi(), which this reimplements
// without alteration per spec.md §9's instruction to follow the original
// where the published algorithm leaves the transform undocumented.
func phi(n, ev, inf int64) int64 {
	if n == inf || n == -inf {
		return ev * n
	}
	if n%2 != 0 {
		return -n
	}
	return n
}

// parityCombinator is the parity-native obsolete-edge lookahead grounded
// on pgSolver2.c's pgObsolete/phi: each vertex's lookahead value is the
// max of its own priority and the phi-transformed best successor value,
// and an edge is obsolete when that combined value's parity disagrees
// with v's owner code (1 for P1, 2 for P2) rather than with v's own
// priority directly — the source compares against owner parity, and this
// preserves that exact, slightly surprising contract rather than
// "correcting" it toward the more intuitive priority-parity comparison.
type parityCombinator struct{}

// NewParityCombinator builds the obsolete-edge combinator for Algorithm
// B's parity-native pruning pass.
func NewParityCombinator() Combinator {
	return parityCombinator{}
}

func (parityCombinator) InitialValue(g *pgcore.Graph, v, w int, inf int64) int64 {
	if w == v {
		return 0
	}
	return inf
}

func (parityCombinator) BestValue(g *pgcore.Graph, v, w, u int, eta []int64) int64 {
	ev := int64(g.Epsilon(v))
	return int64(g.Epsilon(w)) * phi(eta[u], ev, ParityInf)
}

func (parityCombinator) Step(g *pgcore.Graph, v, w int, best int64, hasSucc bool, inf int64) int64 {
	if !hasSucc {
		return inf
	}
	ev := int64(g.Epsilon(v))
	transformed := int64(g.Epsilon(w)) * phi(best, ev, inf)
	priority := int64(g.Priority(w))
	if priority > transformed {
		return priority
	}
	return transformed
}

func (parityCombinator) Obsolete(g *pgcore.Graph, v, u int, eta []int64, inf int64) bool {
	if eta[u] == inf {
		return false
	}
	max := eta[u]
	if priority := int64(g.Priority(v)); priority > max {
		max = priority
	}
	ownerCode := int64(g.Owner(v))
	return max%2 != ownerCode%2
}
