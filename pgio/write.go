package pgio

import (
	"fmt"
	"io"

	"github.com/katalvlaran/paritygames/pgcore"
)

// Write serializes g in the PGSolver text format, grounded on the
// original writeGraph: a "parity N;" header (N = n-1, the highest
// vertex index) followed by one "v priority owner s1, s2, ...;"
// statement per vertex, with the owner remapped back to the 0/1 wire
// convention (2 - owner).
func Write(w io.Writer, g *pgcore.Graph) error {
	n := g.N()
	if _, err := fmt.Fprintf(w, "parity %d;\n", n-1); err != nil {
		return err
	}

	for v := 0; v < n; v++ {
		owner := 2 - int(g.Owner(v))
		if _, err := fmt.Fprintf(w, "%d %d %d ", v, g.Priority(v), owner); err != nil {
			return err
		}

		first := true
		g.ForEachSuccessor(v, func(u int) bool {
			if first {
				fmt.Fprintf(w, "%d", u)
				first = false
			} else {
				fmt.Fprintf(w, ", %d", u)
			}
			return true
		})

		if v != n-1 {
			if _, err := fmt.Fprint(w, ";\n"); err != nil {
				return err
			}
		}
	}

	return nil
}
