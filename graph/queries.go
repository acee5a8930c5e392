// File: queries.go
// Role: read-only Graph queries — node/edge listing, in/out edges,
// predecessors/successors, single-edge lookup.
// Determinism: Nodes(), Edges(), InEdges(), OutEdges() all return
// slices sorted by node ID (and, for Edges, secondarily by To) so that
// logs and golden comparisons are stable, matching core.Graph's
// "Edges() sorted by Edge.ID asc" determinism policy.
package graph

import "sort"

// HasNode reports whether id names a node of the graph.
func (g *Graph) HasNode(id NodeID) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// NodeCount returns |V|, the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return len(g.nodes)
}

// Nodes returns every node ID in the graph, sorted ascending.
func (g *Graph) Nodes() []NodeID {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edge returns the Edge u→v, or ErrEdgeNotFound if no such edge exists.
func (g *Graph) Edge(u, v NodeID) (Edge, error) {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	pair, ok := g.out[u][v]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return Edge{From: u, To: v, Expected: pair[0], WorstCase: pair[1]}, nil
}

// Edges returns every edge in the graph, sorted by (From, To).
func (g *Graph) Edges() []Edge {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	var edges []Edge
	for from, neighbors := range g.out {
		for to, pair := range neighbors {
			edges = append(edges, Edge{From: from, To: to, Expected: pair[0], WorstCase: pair[1]})
		}
	}
	sortEdges(edges)

	return edges
}

// OutEdges returns every edge leaving u, sorted by To.
func (g *Graph) OutEdges(u NodeID) []Edge {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	edges := make([]Edge, 0, len(g.out[u]))
	for to, pair := range g.out[u] {
		edges = append(edges, Edge{From: u, To: to, Expected: pair[0], WorstCase: pair[1]})
	}
	sortEdges(edges)

	return edges
}

// InEdges returns every edge arriving at v, sorted by From.
func (g *Graph) InEdges(v NodeID) []Edge {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	edges := make([]Edge, 0, len(g.in[v]))
	for from, pair := range g.in[v] {
		edges = append(edges, Edge{From: from, To: v, Expected: pair[0], WorstCase: pair[1]})
	}
	sortEdges(edges)

	return edges
}

// Successors returns the node IDs reachable from u by one outgoing edge,
// sorted ascending.
func (g *Graph) Successors(u NodeID) []NodeID {
	edges := g.OutEdges(u)
	ids := make([]NodeID, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}

	return ids
}

// Predecessors returns the node IDs with an edge into v, sorted ascending.
func (g *Graph) Predecessors(v NodeID) []NodeID {
	edges := g.InEdges(v)
	ids := make([]NodeID, len(edges))
	for i, e := range edges {
		ids[i] = e.From
	}

	return ids
}

func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})
}
