package system_test

import (
	"github.com/katalvlaran/raindrop/baruah"
	"github.com/katalvlaran/raindrop/graph"
)

// oracleSolve runs the strict-domination batch solver and returns each
// node's frontier as a (D, Delta) set, ready to compare against
// table.Table.ParetoProjection() for the projection-equivalence check.
func oracleSolve(g *graph.Graph, destination graph.NodeID) (map[graph.NodeID]map[[2]int64]struct{}, error) {
	tabs, err := baruah.Solve(g, destination, baruah.Original)
	if err != nil {
		return nil, err
	}

	out := make(map[graph.NodeID]map[[2]int64]struct{}, len(tabs))
	for node, tab := range tabs {
		out[node] = tab.ParetoProjection()
	}

	return out, nil
}
