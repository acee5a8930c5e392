// File: path.go
// Role: Path(n) — a simple directed path 0->1->...->(n-1).
package graphgen

import (
	"fmt"

	"github.com/katalvlaran/raindrop/graph"
)

const minPathVertices = 2

// Path builds a directed simple path over n vertices, edges i -> i+1 for
// i = 0..n-2, in ascending order.
func Path(n int, opts ...Option) (*graph.Graph, error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("graphgen: Path(n=%d) < min=%d: %w", n, minPathVertices, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	g, err := graph.New(nil)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		u, v := cfg.idFn(i-1), cfg.idFn(i)
		expected, worstCase := cfg.delayFn(cfg.rng)
		if err := g.AddEdge(u, v, expected, worstCase); err != nil {
			return nil, fmt.Errorf("graphgen: Path: AddEdge(%s→%s): %w", u, v, err)
		}
	}

	return g, nil
}
