package pgviz

import (
	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/paritygames/pgcore"
)

// Adapter presents a pgcore.Graph as a gonum graph.Directed, using live
// (non-removed) edges only.
type Adapter struct {
	g *pgcore.Graph
}

// NewAdapter wraps g for use with gonum's graph algorithms and encoders.
func NewAdapter(g *pgcore.Graph) *Adapter {
	return &Adapter{g: g}
}

type vertexNode int64

func (v vertexNode) ID() int64 { return int64(v) }

type vertexEdge struct {
	from, to vertexNode
}

func (e vertexEdge) From() graph.Node         { return e.from }
func (e vertexEdge) To() graph.Node           { return e.to }
func (e vertexEdge) ReversedEdge() graph.Edge { return vertexEdge{from: e.to, to: e.from} }

// Node implements graph.Graph.
func (a *Adapter) Node(id int64) graph.Node {
	if id < 0 || int(id) >= a.g.N() {
		return nil
	}
	return vertexNode(id)
}

// Nodes implements graph.Graph.
func (a *Adapter) Nodes() graph.Nodes {
	nodes := make([]graph.Node, a.g.N())
	for i := range nodes {
		nodes[i] = vertexNode(i)
	}
	return &nodeIterator{nodes: nodes, index: -1}
}

// From implements graph.Graph.
func (a *Adapter) From(id int64) graph.Nodes {
	succ := a.g.Successors(int(id))
	nodes := make([]graph.Node, len(succ))
	for i, u := range succ {
		nodes[i] = vertexNode(u)
	}
	return &nodeIterator{nodes: nodes, index: -1}
}

// To implements graph.Directed.
func (a *Adapter) To(id int64) graph.Nodes {
	var preds []graph.Node
	for v := 0; v < a.g.N(); v++ {
		if a.HasEdgeFromTo(int64(v), id) {
			preds = append(preds, vertexNode(v))
		}
	}
	return &nodeIterator{nodes: preds, index: -1}
}

// HasEdgeBetween implements graph.Graph.
func (a *Adapter) HasEdgeBetween(xid, yid int64) bool {
	return a.HasEdgeFromTo(xid, yid) || a.HasEdgeFromTo(yid, xid)
}

// HasEdgeFromTo implements graph.Directed.
func (a *Adapter) HasEdgeFromTo(uid, vid int64) bool {
	for _, s := range a.g.Successors(int(uid)) {
		if int64(s) == vid {
			return true
		}
	}
	return false
}

// Edge implements graph.Graph.
func (a *Adapter) Edge(uid, vid int64) graph.Edge {
	if !a.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return vertexEdge{from: vertexNode(uid), to: vertexNode(vid)}
}

type nodeIterator struct {
	nodes []graph.Node
	index int
}

func (it *nodeIterator) Next() bool {
	if it.index+1 >= len(it.nodes) {
		return false
	}
	it.index++
	return true
}

func (it *nodeIterator) Len() int          { return len(it.nodes) - (it.index + 1) }
func (it *nodeIterator) Reset()            { it.index = -1 }
func (it *nodeIterator) Node() graph.Node  { return it.nodes[it.index] }
