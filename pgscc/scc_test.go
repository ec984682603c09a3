package pgscc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paritygames/pgcore"
	"github.com/katalvlaran/paritygames/pgscc"
)

// buildChain builds 0<->1 (one SCC) -> 2 (separate SCC, sink).
func buildChain(t *testing.T) *pgcore.Graph {
	t.Helper()
	g := pgcore.NewGraph(3)
	for i := 0; i < 3; i++ {
		g.SetVertex(i, pgcore.PlayerOne, 0)
	}
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 2))

	return g
}

func TestDecompose_TwoComponents(t *testing.T) {
	g := buildChain(t)
	comps := pgscc.Decompose(g, []int{0, 1, 2})
	require.Len(t, comps, 2)

	byVertex := map[int]pgscc.Component{}
	for _, c := range comps {
		for _, v := range c.Vertices {
			byVertex[v] = c
		}
	}

	// {0,1} and {2} must each be their own component.
	require.Equal(t, byVertex[0].Rank, byVertex[1].Rank)
	require.NotEqual(t, byVertex[0].Rank, byVertex[2].Rank)

	// The sink component {2} (no outgoing inter-component edge) has the
	// highest rank.
	require.Greater(t, byVertex[2].Rank, byVertex[0].Rank)
}

func TestDecompose_SingleVertexSelfLoop(t *testing.T) {
	g := pgcore.NewGraph(1)
	g.SetVertex(0, pgcore.PlayerOne, 2)
	require.NoError(t, g.AddEdge(0, 0))

	comps := pgscc.Decompose(g, []int{0})
	require.Len(t, comps, 1)
	require.Equal(t, 1, comps[0].Rank)
	require.Equal(t, []int{0}, comps[0].Vertices)
}

func TestDecompose_RankOrderRespectsInterComponentEdges(t *testing.T) {
	g := buildChain(t)
	comps := pgscc.Decompose(g, []int{0, 1, 2})
	rankOf := map[int]int{}
	for _, c := range comps {
		for _, v := range c.Vertices {
			rankOf[v] = c.Rank
		}
	}
	// every edge from a lower-rank component to a distinct component must
	// land on a strictly higher rank (property P5).
	require.Less(t, rankOf[1], rankOf[2])
}

func TestDecompose_IgnoresEdgesOutsideSubset(t *testing.T) {
	g := buildChain(t)
	// Decomposing only {0,1}: the edge 1->2 must be ignored, not treated
	// as an inter-component edge to a vertex outside the subset.
	comps := pgscc.Decompose(g, []int{0, 1})
	require.Len(t, comps, 1)
	require.ElementsMatch(t, []int{0, 1}, comps[0].Vertices)
}
