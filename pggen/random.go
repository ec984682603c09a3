package pggen

import (
	"math/rand/v2"

	"github.com/katalvlaran/paritygames/pgcore"
)

// RandomGame builds a uniform-random game: every vertex gets a random
// owner, a random priority in [0, maxPriority], and a random, nonempty
// set of distinct outgoing edges, grounded on "Test Generator/main.c"'s
// first test batch (the source's adjacency-matrix scheme could in
// principle dedup down to zero edges; picking from a permutation instead
// keeps the "no sinks" guarantee exact rather than merely likely).
func RandomGame(rng *rand.Rand, opts ...Option) *pgcore.Graph {
	c := newConfig(rng, opts)
	n := c.minVertices + rng.IntN(max(c.maxVertices, 1))

	g := pgcore.NewGraph(n)
	for v := 0; v < n; v++ {
		owner := pgcore.PlayerTwo
		if rng.IntN(2) == 1 {
			owner = pgcore.PlayerOne
		}
		priority := rng.IntN(c.maxPriority + 1)
		g.SetVertex(v, owner, priority)
	}

	for v := 0; v < n; v++ {
		outDegree := 1 + rng.IntN(c.maxOutDegree)
		if outDegree > n {
			outDegree = n
		}
		for _, u := range rng.Perm(n)[:outDegree] {
			_ = g.AddEdge(v, u)
		}
	}

	return g
}
