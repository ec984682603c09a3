package pgbench_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paritygames/pgbench"
	"github.com/katalvlaran/paritygames/pgcore"
	"github.com/katalvlaran/paritygames/pgio"
)

func writeSampleGame(t *testing.T, dir, name string) string {
	t.Helper()
	g := pgcore.NewGraph(2)
	g.SetVertex(0, pgcore.PlayerTwo, 0)
	g.SetVertex(1, pgcore.PlayerTwo, 2)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 1))

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, pgio.Write(f, g))
	return path
}

func TestWalkDirectory_ListsRegularFiles(t *testing.T) {
	dir := t.TempDir()
	writeSampleGame(t, dir, "a.gm")
	writeSampleGame(t, dir, "b.gm")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	files, err := pgbench.WalkDirectory(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
}

func TestRunSet_AgreesAcrossAlgorithms(t *testing.T) {
	dir := t.TempDir()
	writeSampleGame(t, dir, "a.gm")
	writeSampleGame(t, dir, "b.gm")

	results, err := pgbench.RunSet(context.Background(), dir, pgio.DefaultCaps, 0, 4)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		require.NoError(t, r.Err)
		require.False(t, r.Disagreement)
		require.Equal(t, 2, r.Vertices)
	}
}

func TestWriteReport_ProducesNonEmptyWorkbook(t *testing.T) {
	dir := t.TempDir()
	writeSampleGame(t, dir, "a.gm")
	results, err := pgbench.RunSet(context.Background(), dir, pgio.DefaultCaps, 0, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pgbench.WriteReport(&buf, results))
	require.Positive(t, buf.Len())
}
