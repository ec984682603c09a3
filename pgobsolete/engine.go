package pgobsolete

import "github.com/katalvlaran/paritygames/pgcore"

// Edge is a candidate obsolete edge discovered by an engine pass.
type Edge struct {
	From int
	To   int
}

// Combinator supplies the three moving parts of an n-step lookahead
// rooted at each vertex v in turn: the initial vector, the per-step fold
// over live successors, and the final obsolete test. FindObsoleteEdges
// owns the iteration order and the vector bookkeeping; everything
// recurrence-specific lives in the Combinator.
type Combinator interface {
	// InitialValue returns eta_0[w] for the lookahead currently rooted at v.
	InitialValue(g *pgcore.Graph, v, w int, inf int64) int64

	// BestValue folds one live successor u of w into the running best,
	// given the previous iteration's eta vector. Called once per live
	// successor; FindObsoleteEdges keeps the running maximum itself.
	BestValue(g *pgcore.Graph, v, w, u int, eta []int64) int64

	// Step turns the folded "best" value (and whether w had any live
	// successor at all) into eta_i[w].
	Step(g *pgcore.Graph, v, w int, best int64, hasSucc bool, inf int64) int64

	// Obsolete decides whether edge (v,u) is safe for v's owner to never
	// choose, given the converged eta vector rooted at v.
	Obsolete(g *pgcore.Graph, v, u int, eta []int64, inf int64) bool
}

// FindObsoleteEdges runs one full pass of the lookahead described by c,
// rooted at every vertex in turn, and returns every edge the combinator
// judges obsolete. It does not mutate g.
func FindObsoleteEdges(g *pgcore.Graph, k int, inf int64, c Combinator) []Edge {
	n := g.N()
	var obsolete []Edge

	for v := 0; v < n; v++ {
		eta := make([]int64, n)
		for w := 0; w < n; w++ {
			eta[w] = c.InitialValue(g, v, w, inf)
		}

		for i := 1; i < k; i++ {
			next := make([]int64, n)
			next[v] = 0
			for w := 0; w < n; w++ {
				if w == v {
					continue
				}
				var best int64
				hasSucc := false
				g.ForEachSuccessor(w, func(u int) bool {
					val := c.BestValue(g, v, w, u, eta)
					if !hasSucc || val > best {
						best = val
						hasSucc = true
					}
					return true
				})
				next[w] = c.Step(g, v, w, best, hasSucc, inf)
			}
			eta = next
		}

		g.ForEachSuccessor(v, func(u int) bool {
			if c.Obsolete(g, v, u, eta, inf) {
				obsolete = append(obsolete, Edge{From: v, To: u})
			}
			return true
		})
	}

	return obsolete
}

// PruneToFixpoint repeatedly finds and removes obsolete edges until a
// pass finds none, then reports the total number of edges removed.
func PruneToFixpoint(g *pgcore.Graph, k int, inf int64, c Combinator) int {
	total := 0
	for {
		found := FindObsoleteEdges(g, k, inf, c)
		if len(found) == 0 {
			return total
		}
		for _, e := range found {
			g.RemoveEdge(e.From, e.To)
		}
		total += len(found)
	}
}
