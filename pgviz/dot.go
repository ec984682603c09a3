package pgviz

import "gonum.org/v1/gonum/graph/encoding/dot"

// ExportDOT renders an *Adapter as Graphviz DOT source.
func ExportDOT(g *Adapter, name string) (string, error) {
	b, err := dot.Marshal(g, name, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
