// File: cycle.go
// Role: Cycle(n) — a simple directed ring 0->1->...->(n-1)->0.
package graphgen

import (
	"fmt"

	"github.com/katalvlaran/raindrop/graph"
)

const minCycleVertices = 3

// Cycle builds a directed simple cycle over n vertices, edges i -> (i+1
// mod n), in ascending order. Used to regression-test that a fully
// cyclic graph still converges and satisfies projection equivalence.
func Cycle(n int, opts ...Option) (*graph.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("graphgen: Cycle(n=%d) < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	g, err := graph.New(nil)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
		expected, worstCase := cfg.delayFn(cfg.rng)
		if err := g.AddEdge(u, v, expected, worstCase); err != nil {
			return nil, fmt.Errorf("graphgen: Cycle: AddEdge(%s→%s): %w", u, v, err)
		}
	}

	return g, nil
}
