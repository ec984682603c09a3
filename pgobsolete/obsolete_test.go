package pgobsolete_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paritygames/pgcore"
	"github.com/katalvlaran/paritygames/pgobsolete"
)

// v0 (P2) has two edges: a self-loop (priority 0, bad for P2) and an edge
// to v1 (P2, priority 4, a strictly better self-loop). The self-loop on
// v0 must be provably obsolete for v0's owner once the lookahead sees
// that v1 offers a uniformly better outcome.
func TestMeanPayoff_ObsoleteSelfLoopWhenBetterPathExists(t *testing.T) {
	g := pgcore.NewGraph(2)
	g.SetVertex(0, pgcore.PlayerTwo, 0)
	g.SetVertex(1, pgcore.PlayerTwo, 4)
	require.NoError(t, g.AddEdge(0, 0))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 1))

	mu := pgobsolete.MeanPayoffWeights(g)
	c := pgobsolete.NewMeanPayoffCombinator(mu)
	found := pgobsolete.FindObsoleteEdges(g, g.N(), pgobsolete.MeanPayoffInf, c)

	require.Contains(t, found, pgobsolete.Edge{From: 0, To: 0})
}

func TestMeanPayoff_PruneToFixpointRemovesEdges(t *testing.T) {
	g := pgcore.NewGraph(2)
	g.SetVertex(0, pgcore.PlayerTwo, 0)
	g.SetVertex(1, pgcore.PlayerTwo, 4)
	require.NoError(t, g.AddEdge(0, 0))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 1))

	mu := pgobsolete.MeanPayoffWeights(g)
	c := pgobsolete.NewMeanPayoffCombinator(mu)
	removed := pgobsolete.PruneToFixpoint(g, g.N(), pgobsolete.MeanPayoffInf, c)

	require.Positive(t, removed)
	require.True(t, g.IsRemoved(0, indexOf(g, 0, 0)))
}

// A two-vertex cycle where both vertices are owned by the same player
// offers no alternative move at all, so nothing should ever be found
// obsolete: the owner's only edge is also their best one by default.
func TestParity_NoObsoleteEdgeWithoutAlternative(t *testing.T) {
	g := pgcore.NewGraph(2)
	g.SetVertex(0, pgcore.PlayerOne, 1)
	g.SetVertex(1, pgcore.PlayerOne, 2)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0))

	c := pgobsolete.NewParityCombinator()
	found := pgobsolete.FindObsoleteEdges(g, g.N(), pgobsolete.ParityInf, c)
	require.Empty(t, found)
}

// v0 (P1, priority 1) can go to v1 (self-loop, priority 2, even -- bad
// for P1) or to v2 (self-loop, priority 3, odd -- good for P1). The edge
// to v1 should be obsolete: P1 never benefits from steering into an
// even-priority sink when an odd-priority sink is also reachable.
func TestParity_ObsoleteEdgeToWorseSink(t *testing.T) {
	g := pgcore.NewGraph(3)
	g.SetVertex(0, pgcore.PlayerOne, 1)
	g.SetVertex(1, pgcore.PlayerTwo, 2)
	g.SetVertex(2, pgcore.PlayerTwo, 3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 1))
	require.NoError(t, g.AddEdge(2, 2))

	c := pgobsolete.NewParityCombinator()
	found := pgobsolete.FindObsoleteEdges(g, g.N(), pgobsolete.ParityInf, c)

	require.Contains(t, found, pgobsolete.Edge{From: 0, To: 1})
	require.NotContains(t, found, pgobsolete.Edge{From: 0, To: 2})
}

func indexOf(g *pgcore.Graph, v, target int) int {
	for i, u := range g.RawSuccessors(v) {
		if u == target {
			return i
		}
	}
	return -1
}
