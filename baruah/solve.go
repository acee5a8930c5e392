// File: solve.go
// Role: Solve — the batch routing-table computation entrypoint, and the
// runner that carries its mutable state through the fixed number of
// relaxation passes.
package baruah

import (
	"github.com/katalvlaran/raindrop/graph"
	"github.com/katalvlaran/raindrop/table"
)

// Solve computes, for every node of g, the routing table holding its
// Pareto-relevant worst-case-delay-bounded paths to destination, under
// variant's relaxation discipline.
//
// Preconditions:
//  1. g must be non-nil (ErrNilGraph).
//  2. destination must be a node of g (ErrDestinationNotFound).
//
// Complexity: O(passes * E) where passes is |V|-1 (Original) or
// 2*(|V|-1) (PerParentNoCyclicEntries), and each relaxation pass itself
// does O(Tv * Tu) domination comparisons per edge.
func Solve(g *graph.Graph, destination graph.NodeID, variant Variant) (map[graph.NodeID]table.Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(destination) {
		return nil, ErrDestinationNotFound
	}

	r := &runner{
		g:           g,
		destination: destination,
		variant:     variant,
		tab:         make(map[graph.NodeID]table.Table, g.NodeCount()),
	}
	r.init()
	r.process()

	return r.tab, nil
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	g           *graph.Graph
	destination graph.NodeID
	variant     Variant
	tab         map[graph.NodeID]table.Table
	edges       []graph.Edge
}

// init allocates an empty table for every node and seeds the
// destination's table with the sentinel entry (0, ⊥, 0).
func (r *runner) init() {
	for _, n := range r.g.Nodes() {
		r.tab[n] = table.New()
	}

	dest := r.tab[r.destination]
	dest.Insert(table.DestinationEntry(), table.StrictDomination)
	r.tab[r.destination] = dest

	r.edges = r.g.Edges()
}

// process runs the fixed number of relaxation passes prescribed by
// r.variant, relaxing every edge once per pass.
func (r *runner) process() {
	passes := r.passCount()
	for i := 0; i < passes; i++ {
		for _, e := range r.edges {
			r.relaxEdge(e)
		}
	}
}

// passCount returns |V|-1 for Original and 2*(|V|-1) for
// PerParentNoCyclicEntries.
func (r *runner) passCount() int {
	k := r.g.NodeCount() - 1
	if k < 0 {
		k = 0
	}
	if r.variant == PerParentNoCyclicEntries {
		return 2 * k
	}

	return k
}

// relaxEdge applies r.variant's relaxation discipline to edge e,
// updating tab[e.From] from tab[e.To].
func (r *runner) relaxEdge(e graph.Edge) {
	Tu := r.tab[e.From]
	Tv := r.tab[e.To]

	switch r.variant {
	case PerParentNoCyclicEntries:
		r.tab[e.From] = RelaxPerParent(e, Tu, Tv)
	default:
		r.tab[e.From] = Relax(e, Tu, Tv)
	}
}
