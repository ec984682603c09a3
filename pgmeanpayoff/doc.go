// Package pgmeanpayoff implements Algorithm A's per-SCC subgraph solver:
// a strongly connected subset of the parity game is reduced to a mean
// payoff game using the mu = (-n)^priority weights it shares with
// pgobsolete's mean-payoff lookahead, then solved by value iteration.
// Cross-component edges are folded in as an already-decided signed
// infinity rather than a finite weight, since the caller (pgsolve) always
// solves components in rank order and passes in the winners already
// known for every higher-ranked neighbor.
package pgmeanpayoff
