// Package pggen builds random test games, grounded on "Test
// Generator/main.c": a uniform-random generator (every vertex gets a
// random owner, priority, and out-edge set) and a bipartite-symmetric
// generator (vertices split into a P1 half and a P2 half, every edge
// crosses the split and is mirrored in both directions). Both take an
// explicit *rand.Rand (math/rand/v2) rather than the source's
// process-global srand(time(NULL)) seed, so a caller can reproduce a
// generated game byte-for-byte by reusing the same seed.
package pggen
