// Command pggen writes a random test game in the PGSolver text format,
// the CLI counterpart of "Test Generator/main.c".
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/katalvlaran/paritygames/pggen"
	"github.com/katalvlaran/paritygames/pgio"
)

func main() {
	kind := flag.String("kind", "random", "game kind: random or bipartite")
	seed := flag.Uint64("seed", 1, "PRNG seed (reusing a seed reproduces the same game)")
	minVertices := flag.Int("min-vertices", 1, "minimum vertex count")
	maxVertices := flag.Int("max-vertices", 300, "vertex count range width above min-vertices")
	maxPriority := flag.Int("max-priority", 9, "maximum vertex priority")
	out := flag.String("out", "", "output file path (default: stdout)")
	flag.Parse()

	rng := rand.New(rand.NewPCG(*seed, *seed))
	opts := []pggen.Option{
		pggen.WithVertexRange(*minVertices, *maxVertices),
		pggen.WithMaxPriority(*maxPriority),
	}

	g := pggen.RandomGame(rng, opts...)
	if *kind == "bipartite" {
		g = pggen.BipartiteSymmetricGame(rng, opts...)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintln(os.Stderr, "pggen:", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := pgio.Write(w, g); err != nil {
		fmt.Fprintln(os.Stderr, "pggen:", err)
		os.Exit(1)
	}
}
