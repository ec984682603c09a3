package pggen

import "math/rand/v2"

// config holds the parameters shared by every generator in this
// package, with the defaults "Test Generator/main.c" used for its
// random test batches.
type config struct {
	rng         *rand.Rand
	minVertices int
	maxVertices int
	maxPriority int
	maxOutDegree int
}

// Option configures a generator call.
type Option func(*config)

func newConfig(rng *rand.Rand, opts []Option) config {
	c := config{
		rng:          rng,
		minVertices:  1,
		maxVertices:  300,
		maxPriority:  9,
		maxOutDegree: 10,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithVertexRange bounds the number of vertices a generator produces to
// [min, min+max), mirroring the source's nMin/nMax sliding window across
// test batches.
func WithVertexRange(min, max int) Option {
	return func(c *config) {
		c.minVertices = min
		c.maxVertices = max
	}
}

// WithMaxPriority bounds the highest priority a generated vertex may
// receive.
func WithMaxPriority(max int) Option {
	return func(c *config) {
		c.maxPriority = max
	}
}

// WithMaxOutDegree bounds the number of outgoing edges RandomGame assigns
// to each vertex, and the random fan-out BipartiteSymmetricGame gives each
// P2 vertex into the P1 half (capped further by the size of that half;
// mirrored edges can add more).
func WithMaxOutDegree(max int) Option {
	return func(c *config) {
		c.maxOutDegree = max
	}
}
