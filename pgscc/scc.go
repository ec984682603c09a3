package pgscc

import "github.com/katalvlaran/paritygames/pgcore"

// Component is one strongly connected component of the subgraph induced
// by a requested vertex subset. Rank is in [1, s] where s is the total
// number of components; every edge within the subset from a component of
// rank a to a distinct component goes to a strictly higher rank b > a.
// pgsolve sorts the components by descending rank so the highest-rank
// (sink-like) component is solved first.
type Component struct {
	Rank     int
	Vertices []int
}

// decomposer holds the working state of one Decompose call.
type decomposer struct {
	g        *pgcore.Graph
	inSubset map[int]bool
	index    int
	preorder map[int]int
	assigned map[int]bool
	vStack   []int // the path of vertices currently being explored
	pStack   []int // candidate SCC roots, bounded by preorder number
	order    int   // number of components closed so far
	comps    []Component
}

// Decompose returns the strongly connected components of the subgraph of
// g induced by x (edges with both endpoints in x, live only), ranked per
// spec.md §4.1.
func Decompose(g *pgcore.Graph, x []int) []Component {
	d := &decomposer{
		g:        g,
		inSubset: make(map[int]bool, len(x)),
		preorder: make(map[int]int, len(x)),
		assigned: make(map[int]bool, len(x)),
	}
	for _, v := range x {
		d.inSubset[v] = true
	}

	for _, v := range x {
		if _, seen := d.preorder[v]; !seen {
			d.strongConnect(v)
		}
	}

	// d.comps was built in closing order (first-closed = sink-like, no
	// outgoing edge to an unassigned component). Rank highest for the
	// first closed, matching spec.md's "sinks get the highest rank".
	total := len(d.comps)
	for i := range d.comps {
		d.comps[i].Rank = total - i
	}

	return d.comps
}

func (d *decomposer) strongConnect(v int) {
	d.preorder[v] = d.index
	d.index++
	d.vStack = append(d.vStack, v)
	d.pStack = append(d.pStack, v)

	d.g.ForEachSuccessor(v, func(w int) bool {
		if !d.inSubset[w] {
			return true
		}
		if _, seen := d.preorder[w]; !seen {
			d.strongConnect(w)
		} else if !d.assigned[w] {
			// w is on the path but not yet closed: pop every candidate
			// root whose preorder is deeper than w's, since they are all
			// now known reachable from w (and hence from each other).
			for d.preorder[d.pStack[len(d.pStack)-1]] > d.preorder[w] {
				d.pStack = d.pStack[:len(d.pStack)-1]
			}
		}
		return true
	})

	if d.pStack[len(d.pStack)-1] == v {
		d.pStack = d.pStack[:len(d.pStack)-1]
		d.order++

		var members []int
		for {
			n := len(d.vStack) - 1
			w := d.vStack[n]
			d.vStack = d.vStack[:n]
			d.assigned[w] = true
			members = append(members, w)
			if w == v {
				break
			}
		}
		d.comps = append(d.comps, Component{Vertices: members})
	}
}
