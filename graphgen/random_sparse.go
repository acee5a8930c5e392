// File: random_sparse.go
// Role: RandomSparse(n, p) — an Erdős–Rényi-style directed generator:
// include each ordered pair (i, j), i != j, independently with
// probability p. Generalized from lvlath's builder.RandomSparse, which
// samples single-weight edges; this variant samples (expected,
// worst-case) delay pairs instead.
package graphgen

import (
	"fmt"

	"github.com/katalvlaran/raindrop/graph"
)

const minRandomSparseVertices = 1

// RandomSparse samples a directed graph over n vertices with independent
// edge-inclusion probability p. Self-loops are never produced (the
// routing model has no use for them). An RNG (WithSeed or WithRand) is
// required whenever 0 < p < 1; for p == 0 or p == 1 the result is fully
// determined and no RNG is consulted for edge inclusion (delay draws
// still use it if one is configured).
//
// This is what exercises the message-count property (messages_sent/|E|
// bound) across random graphs of |V| up to ~10, the way ad hoc
// randomized regression fixtures exercised the original routing
// prototype this module descends from.
func RandomSparse(n int, p float64, opts ...Option) (*graph.Graph, error) {
	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("graphgen: RandomSparse(n=%d) < min=%d: %w", n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("graphgen: RandomSparse(p=%.6f) not in [0,1]: %w", p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("graphgen: RandomSparse: %w", ErrNeedRandSource)
	}

	g, err := graph.New(nil)
	if err != nil {
		return nil, err
	}
	// Every index is a node even if it ends up with no incident edges
	// (possible at low p) — the destination must always be addressable.
	for i := 0; i < n; i++ {
		if err := g.AddNode(cfg.idFn(i)); err != nil {
			return nil, fmt.Errorf("graphgen: RandomSparse: AddNode(%s): %w", cfg.idFn(i), err)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}

			include := p == 1
			if cfg.rng != nil && p > 0 && p < 1 {
				include = cfg.rng.Float64() < p
			}
			if !include {
				continue
			}

			u, v := cfg.idFn(i), cfg.idFn(j)
			expected, worstCase := cfg.delayFn(cfg.rng)
			if err := g.AddEdge(u, v, expected, worstCase); err != nil {
				return nil, fmt.Errorf("graphgen: RandomSparse: AddEdge(%s→%s): %w", u, v, err)
			}
		}
	}

	return g, nil
}
