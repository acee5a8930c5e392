// File: complete.go
// Role: Complete(n) — every ordered pair of distinct vertices gets an
// edge, the densest directed graph this generator can produce.
package graphgen

import (
	"fmt"

	"github.com/katalvlaran/raindrop/graph"
)

const minCompleteVertices = 1

// Complete builds the complete directed graph K_n: for every ordered
// pair (i, j) with i != j, an edge i -> j. Used to stress-test the
// (|V|-1)-ancestor-chain guard and the message-count property under
// maximum edge density.
func Complete(n int, opts ...Option) (*graph.Graph, error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("graphgen: Complete(n=%d) < min=%d: %w", n, minCompleteVertices, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	g, err := graph.New(nil)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := g.AddNode(cfg.idFn(i)); err != nil {
			return nil, fmt.Errorf("graphgen: Complete: AddNode(%s): %w", cfg.idFn(i), err)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			u, v := cfg.idFn(i), cfg.idFn(j)
			expected, worstCase := cfg.delayFn(cfg.rng)
			if err := g.AddEdge(u, v, expected, worstCase); err != nil {
				return nil, fmt.Errorf("graphgen: Complete: AddEdge(%s→%s): %w", u, v, err)
			}
		}
	}

	return g, nil
}
