// Package pgviz bridges a pgcore.Graph into the gonum graph ecosystem:
// Adapter presents it as a read-only gonum graph.Directed, and ExportDOT
// renders such an Adapter as Graphviz DOT source via
// gonum's own encoder. Nothing else in this module depends on gonum;
// this package exists purely so a parity game can be inspected, laid
// out, or cross-checked (see the topo.Sort-based test alongside pgscc's
// rank ordering) with the wider Go graph tooling ecosystem.
package pgviz
