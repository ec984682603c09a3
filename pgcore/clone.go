package pgcore

// Clone returns an independent deep copy of g: every vertex, every edge,
// and the current removed mask. Each top-level solver receives its own
// Clone of the caller's graph and is free to mutate it (mark edges
// obsolete) without affecting the caller's original or a sibling solver's
// copy — the resource contract spec.md §5 requires of callers that want
// to run solvers concurrently.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.vertices)
	out := &Graph{
		vertices: make([]vertexData, n),
		adj:      make([][]int, n),
		removed:  make([][]bool, n),
	}
	copy(out.vertices, g.vertices)
	for v := 0; v < n; v++ {
		out.adj[v] = append([]int(nil), g.adj[v]...)
		out.removed[v] = append([]bool(nil), g.removed[v]...)
	}

	return out
}
