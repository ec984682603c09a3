// Package pgreach implements the attractor ("reach") engine: given a
// winner map with some vertices already known to be won by player e, it
// extends that set with every vertex from which e can force entry, per
// spec.md §4.2.
package pgreach
