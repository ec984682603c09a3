package pgcore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paritygames/pgcore"
)

func TestPlayer_EpsilonAndOpponent(t *testing.T) {
	require.Equal(t, -1, pgcore.PlayerOne.Epsilon())
	require.Equal(t, 1, pgcore.PlayerTwo.Epsilon())
	require.Equal(t, pgcore.PlayerTwo, pgcore.PlayerOne.Opponent())
	require.Equal(t, pgcore.PlayerOne, pgcore.PlayerTwo.Opponent())
	require.Equal(t, "P1", pgcore.PlayerOne.String())
	require.Equal(t, "P2", pgcore.PlayerTwo.String())
}

func TestPower(t *testing.T) {
	require.Equal(t, int64(1), pgcore.Power(-5, 0))
	require.Equal(t, int64(-5), pgcore.Power(-5, 1))
	require.Equal(t, int64(25), pgcore.Power(-5, 2))
}

func TestAbs64(t *testing.T) {
	require.Equal(t, int64(5), pgcore.Abs64(-5))
	require.Equal(t, int64(5), pgcore.Abs64(5))
	require.Equal(t, int64(0), pgcore.Abs64(0))
}

func TestGraph_MaxPriority(t *testing.T) {
	g := pgcore.NewGraph(3)
	g.SetVertex(0, pgcore.PlayerOne, 4)
	g.SetVertex(1, pgcore.PlayerTwo, 9)
	g.SetVertex(2, pgcore.PlayerTwo, 1)
	require.Equal(t, 9, g.MaxPriority([]int{0, 1, 2}))
	require.Equal(t, 0, g.MaxPriority(nil))
}

func TestWinners_SetIsMonotone(t *testing.T) {
	w := pgcore.NewWinners(2)
	w.Set(0, pgcore.PlayerOne)
	w.Set(0, pgcore.PlayerTwo) // must not overwrite
	require.Equal(t, pgcore.PlayerOne, w[0])
	require.False(t, w.Resolved())
	w.Set(1, pgcore.PlayerTwo)
	require.True(t, w.Resolved())
	require.Equal(t, 1, w.CountByPlayer(pgcore.PlayerOne))
	require.Equal(t, 1, w.CountByPlayer(pgcore.PlayerTwo))
}
