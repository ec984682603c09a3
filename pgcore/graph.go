package pgcore

import "sync"

// Graph is a finite parity game: n vertices, each owned by a player and
// labeled with a priority, plus a dynamic adjacency list. All mutations
// are protected by an internal mutex so independent solver goroutines
// (see the pgbench package) may safely hold distinct Clone()s built from
// one shared source graph without racing on the source's own state.
//
// Adjacency is never compacted. Successors are appended in the order
// AddEdge was called; the parallel removed mask flips bits for edges the
// obsolete-edge passes have pruned, but the slice index of every edge is
// stable for the lifetime of the Graph. Every traversal must consult
// IsRemoved rather than assume a successor is live.
type Graph struct {
	mu       sync.RWMutex
	vertices []vertexData
	adj      [][]int
	removed  [][]bool
}

// NewGraph allocates a Graph with n vertices, all initially owned by
// PlayerUnknown with priority 0 and no edges. Callers populate owner,
// priority and adjacency via SetVertex/AddEdge, then must call Validate
// before handing the graph to a solver.
func NewGraph(n int) *Graph {
	g := &Graph{
		vertices: make([]vertexData, n),
		adj:      make([][]int, n),
		removed:  make([][]bool, n),
	}
	for i := range g.vertices {
		g.adj[i] = make([]int, 0, 2)
		g.removed[i] = make([]bool, 0, 2)
	}
	return g
}

// SetVertex assigns owner and priority to vertex v.
func (g *Graph) SetVertex(v int, owner Player, priority int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[v] = vertexData{owner: owner, priority: priority}
}

// AddEdge appends a directed edge v -> w. Adding the same target twice is
// rejected with ErrDuplicateEdge; the source contract guarantees no
// duplicate targets per spec.md's adjacency invariant.
func (g *Graph) AddEdge(v, w int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, u := range g.adj[v] {
		if u == w {
			return ErrDuplicateEdge
		}
	}
	g.adj[v] = append(g.adj[v], w)
	g.removed[v] = append(g.removed[v], false)

	return nil
}

// Validate checks the no-sinks invariant: every vertex must retain at
// least one non-removed outgoing edge. Neither pgio.Parse (which rejects
// sinks itself) nor the pgsolve solvers call it; it is for callers that
// build a graph by hand.
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for v := range g.vertices {
		if !g.hasLiveEdgeLocked(v) {
			return ErrSinkVertex
		}
	}

	return nil
}

func (g *Graph) hasLiveEdgeLocked(v int) bool {
	for i, rm := range g.removed[v] {
		if !rm {
			_ = i
			return true
		}
	}
	return false
}

// RawSuccessors returns the full successor slice of v, including edges
// that have been marked removed. Index i of the returned slice lines up
// with index i of IsRemoved(v, i); callers that need only live edges
// should use Successors instead.
func (g *Graph) RawSuccessors(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj[v]
}

// Successors returns the live (non-removed) successors of v, in the
// order they were added.
func (g *Graph) Successors(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.adj[v]))
	for i, w := range g.adj[v] {
		if !g.removed[v][i] {
			out = append(out, w)
		}
	}

	return out
}

// IsRemoved reports whether the edge at position i of v's adjacency has
// been marked obsolete.
func (g *Graph) IsRemoved(v, i int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.removed[v][i]
}

// RemoveEdge marks the edge v -> w as obsolete. It is a no-op if the edge
// is already removed or does not exist. Never compacts adjacency, per the
// package doc's stable-index contract.
func (g *Graph) RemoveEdge(v, w int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, u := range g.adj[v] {
		if u == w {
			g.removed[v][i] = true
			return
		}
	}
}

// ForEachSuccessor calls fn once per live successor of v, short-circuiting
// if fn returns false.
func (g *Graph) ForEachSuccessor(v int, fn func(w int) bool) {
	g.mu.RLock()
	adj := g.adj[v]
	rm := g.removed[v]
	g.mu.RUnlock()

	for i, w := range adj {
		if rm[i] {
			continue
		}
		if !fn(w) {
			return
		}
	}
}
