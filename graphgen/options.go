// File: options.go
// Role: functional options for graph constructors — RNG, ID scheme, and
// delay-pair generation policy. Mirrors builder.BuilderOption's shape
// (lvlath): option constructors validate and panic on meaningless
// input, constructors themselves never panic at runtime.
package graphgen

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/raindrop/graph"
)

// DelayFn produces an (expected, worst-case) delay pair for one edge,
// given the generator's RNG (nil if the generator is fully deterministic).
// Implementations must return expected <= worstCase.
type DelayFn func(*rand.Rand) (expected, worstCase int64)

// Option customizes a graphgen constructor by mutating a config before
// graph construction begins.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	idFn     func(int) graph.NodeID
	delayFn  DelayFn
	minDelay int64
	maxDelay int64
}

// defaultIDFn renders index i as its decimal string, "0", "1", ... —
// the same convention graph.New's worked examples use for integer node
// names, since node identity is an opaque hashable key that may be
// either an integer or a string.
func defaultIDFn(i int) graph.NodeID {
	return strconv.Itoa(i)
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		rng:      nil,
		idFn:     defaultIDFn,
		minDelay: 1,
		maxDelay: 10,
	}
	cfg.delayFn = cfg.defaultDelayFn

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// defaultDelayFn draws worstCase uniformly from [minDelay, maxDelay] and
// expected uniformly from [0, worstCase], guaranteeing expected <=
// worstCase. With no RNG configured it returns the fixed pair
// (minDelay, maxDelay), keeping deterministic constructors (Path, Cycle,
// Complete) deterministic by default.
func (c *config) defaultDelayFn(rng *rand.Rand) (int64, int64) {
	if rng == nil {
		return c.minDelay, c.maxDelay
	}
	span := c.maxDelay - c.minDelay
	worstCase := c.minDelay
	if span > 0 {
		worstCase += rng.Int63n(span + 1)
	}
	expected := rng.Int63n(worstCase + 1)

	return expected, worstCase
}

// WithSeed creates a new *rand.Rand with the given seed, for reproducible
// randomized graphs in tests.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("graphgen: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithIDScheme overrides the index→NodeID function. Panics on nil.
func WithIDScheme(fn func(int) graph.NodeID) Option {
	if fn == nil {
		panic("graphgen: WithIDScheme(nil)")
	}

	return func(c *config) { c.idFn = fn }
}

// WithDelayFn overrides the per-edge delay-pair generator. Panics on nil.
func WithDelayFn(fn DelayFn) Option {
	if fn == nil {
		panic("graphgen: WithDelayFn(nil)")
	}

	return func(c *config) { c.delayFn = fn }
}

// WithDelayRange sets the [min, max] worst-case delay bounds the default
// delay generator draws from. Panics if min < 0 or min > max.
func WithDelayRange(min, max int64) Option {
	if min < 0 || min > max {
		panic("graphgen: WithDelayRange(min<0 or min>max)")
	}

	return func(c *config) {
		c.minDelay, c.maxDelay = min, max
	}
}
