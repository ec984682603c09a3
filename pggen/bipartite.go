package pggen

import (
	"math/rand/v2"

	"github.com/katalvlaran/paritygames/pgcore"
)

// BipartiteSymmetricGame builds a bipartite, symmetric game: vertices
// split into a P1 half [0, p1Count) and a P2 half [p1Count, n); every
// edge crosses the split and is mirrored in both directions, grounded on
// "Test Generator/main.c"'s second test batch. Every P1 vertex gets
// exactly one guaranteed outgoing edge into the P2 half (and, by
// symmetry, one guaranteed incoming edge); every P2 vertex gets a random
// fan-out into the P1 half. Both guarantees together rule out sinks,
// unlike the source, which can produce one when every P2 vertex's random
// fan-out happens to land only on already-mirrored edges.
func BipartiteSymmetricGame(rng *rand.Rand, opts ...Option) *pgcore.Graph {
	c := newConfig(rng, opts)
	n := c.minVertices + rng.IntN(max(c.maxVertices, 1))
	if n < 2 {
		n = 2
	}

	p1Count := 1 + rng.IntN(n-1)

	g := pgcore.NewGraph(n)
	for v := 0; v < p1Count; v++ {
		g.SetVertex(v, pgcore.PlayerOne, rng.IntN(c.maxPriority+1))
	}
	for v := p1Count; v < n; v++ {
		g.SetVertex(v, pgcore.PlayerTwo, rng.IntN(c.maxPriority+1))
	}

	for v := 0; v < p1Count; v++ {
		u := p1Count + rng.IntN(n-p1Count)
		addMirrored(g, v, u)
	}

	for v := p1Count; v < n; v++ {
		outDegree := 1 + rng.IntN(c.maxOutDegree)
		if outDegree > p1Count {
			outDegree = p1Count
		}
		for _, u := range rng.Perm(p1Count)[:outDegree] {
			addMirrored(g, v, u)
		}
	}

	return g
}

// addMirrored adds (v,u) and its symmetric counterpart (u,v), ignoring
// the "duplicate edge" error a repeat mirror produces.
func addMirrored(g *pgcore.Graph, v, u int) {
	_ = g.AddEdge(v, u)
	_ = g.AddEdge(u, v)
}
