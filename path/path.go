// File: path.go
// Role: Trace — walk a table snapshot's parent chain from a start node to
// a fixed destination.
package path

import (
	"fmt"

	"github.com/katalvlaran/raindrop/graph"
	"github.com/katalvlaran/raindrop/table"
)

// Selector picks one entry out of a node's table to continue the walk
// with. The default, MinWorstCase, follows the entry with the smallest
// worst-case delay bound (ties broken as table.Table.Min breaks them, in
// table.Entry.Less order: parent, then expected delay).
type Selector func(table.Table) (table.Entry, bool)

// MinWorstCase selects the entry with the smallest D, the guaranteed
// worst-case delay bound — the natural choice for a route a caller wants
// delay guarantees from.
func MinWorstCase(t table.Table) (table.Entry, bool) {
	return t.Min()
}

// Trace walks the π chain recorded in tables, starting at start, and
// returns the sequence of node IDs visited up to and including
// destination (so Trace(tables, start, dest)[0] == start and
// Trace(...)[len-1] == dest). At each node, selector picks which entry's
// parent to follow next; pass nil to use MinWorstCase.
//
// Trace(tables, destination, destination) returns []NodeID{destination}
// without consulting selector, matching the destination's sentinel entry
// having no parent to follow.
func Trace(tables map[graph.NodeID]table.Table, start, destination graph.NodeID, selector Selector) ([]graph.NodeID, error) {
	if selector == nil {
		selector = MinWorstCase
	}

	if _, ok := tables[start]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrStartNotFound, start)
	}

	visited := make(map[graph.NodeID]struct{})
	route := []graph.NodeID{start}
	current := start

	for current != destination {
		if _, seen := visited[current]; seen {
			return nil, fmt.Errorf("%w: revisited %s", ErrCycleDetected, current)
		}
		visited[current] = struct{}{}

		tab, ok := tables[current]
		if !ok {
			return nil, fmt.Errorf("%w: node %s has no table", ErrNoRoute, current)
		}

		entry, ok := selector(tab)
		if !ok {
			return nil, fmt.Errorf("%w: node %s's table is empty", ErrNoRoute, current)
		}
		if entry.Parent == table.NoParent {
			return nil, fmt.Errorf("%w: node %s's selected entry has no next hop", ErrNoRoute, current)
		}

		current = entry.Parent
		route = append(route, current)
	}

	return route, nil
}
