package pgcore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paritygames/pgcore"
)

func buildTriangle(t *testing.T) *pgcore.Graph {
	t.Helper()
	g := pgcore.NewGraph(3)
	g.SetVertex(0, pgcore.PlayerOne, 1)
	g.SetVertex(1, pgcore.PlayerTwo, 2)
	g.SetVertex(2, pgcore.PlayerTwo, 3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0))
	require.NoError(t, g.AddEdge(2, 2))

	return g
}

func TestGraph_BasicAccessors(t *testing.T) {
	g := buildTriangle(t)
	require.Equal(t, 3, g.N())
	require.Equal(t, pgcore.PlayerOne, g.Owner(0))
	require.Equal(t, 2, g.Priority(1))
	require.Equal(t, -1, g.Epsilon(0))
	require.Equal(t, 1, g.Epsilon(1))
	require.ElementsMatch(t, []int{1}, g.Successors(0))
}

func TestGraph_DuplicateEdgeRejected(t *testing.T) {
	g := buildTriangle(t)
	require.ErrorIs(t, g.AddEdge(0, 1), pgcore.ErrDuplicateEdge)
}

func TestGraph_ValidateDetectsSink(t *testing.T) {
	g := pgcore.NewGraph(2)
	g.SetVertex(0, pgcore.PlayerOne, 0)
	g.SetVertex(1, pgcore.PlayerTwo, 0)
	require.NoError(t, g.AddEdge(0, 1))
	// vertex 1 has no outgoing edge: a sink.
	require.ErrorIs(t, g.Validate(), pgcore.ErrSinkVertex)

	require.NoError(t, g.AddEdge(1, 0))
	require.NoError(t, g.Validate())
}

func TestGraph_RemoveEdgeDoesNotCompact(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddEdge(0, 2))
	require.Len(t, g.RawSuccessors(0), 2)

	g.RemoveEdge(0, 1)
	// the raw slice keeps both entries; only the live view drops one.
	require.Len(t, g.RawSuccessors(0), 2)
	require.ElementsMatch(t, []int{2}, g.Successors(0))
	require.True(t, g.IsRemoved(0, 0))
}

func TestGraph_Clone_IsIndependent(t *testing.T) {
	g := buildTriangle(t)
	clone := g.Clone()
	clone.RemoveEdge(0, 1)

	require.ElementsMatch(t, []int{1}, g.Successors(0))
	require.Empty(t, clone.Successors(0))
}

func TestGraph_ForEachSuccessor_SkipsRemoved(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddEdge(0, 2))
	g.RemoveEdge(0, 2)

	var seen []int
	g.ForEachSuccessor(0, func(w int) bool {
		seen = append(seen, w)
		return true
	})
	require.Equal(t, []int{1}, seen)
}
