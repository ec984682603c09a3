package pgreach

import "github.com/katalvlaran/paritygames/pgcore"

// Reach extends w in place: every vertex from which player e can force
// entry into the current e-winning set is added to it. Converges when a
// full pass finds nothing new to add; never overwrites an already-known
// winner (Winners.Set already enforces that).
//
// The source algorithm builds an explicit n*n adjacency matrix and scans
// every vertex for predecessors of each newly-won vertex; this builds a
// predecessor list once (O(n+m)) instead, which is the same worklist
// algorithm of spec.md §4.2 with the one-time setup cost made linear
// rather than quadratic.
func Reach(g *pgcore.Graph, w pgcore.Winners, e pgcore.Player) {
	n := g.N()
	preds := make([][]int, n)
	for v := 0; v < n; v++ {
		g.ForEachSuccessor(v, func(u int) bool {
			preds[u] = append(preds[u], v)
			return true
		})
	}

	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if w[v] == e {
			queue = append(queue, v)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		target := queue[qi]
		for _, v := range preds[target] {
			if w[v] == e {
				continue
			}
			if g.Owner(v) == e {
				w.Set(v, e)
				queue = append(queue, v)
				continue
			}
			if allSuccessorsWinFor(g, w, v, e) {
				w.Set(v, e)
				queue = append(queue, v)
			}
		}
	}
}

// allSuccessorsWinFor reports whether every live outgoing edge of v leads
// to a vertex already won by e — the condition under which the opponent,
// who owns v, has no escape from e's attractor.
func allSuccessorsWinFor(g *pgcore.Graph, w pgcore.Winners, v int, e pgcore.Player) bool {
	all := true
	g.ForEachSuccessor(v, func(u int) bool {
		if w[u] != e {
			all = false
			return false
		}
		return true
	})

	return all
}
