// Package path turns a snapshot of routing tables into an actual usable
// route: walking the π (parent) chain recorded in each node's table
// entries from a start node to the destination.
//
// This is a supplement to the core routing-table algebra, which
// deliberately stops at "a table of Pareto-optimal next hops": rendering
// and persistence are out of scope, but any deployed instance of this
// system still needs to turn a table into a route a packet can follow.
// Grounded on dijkstra.go's ReturnPath/prev predecessor-walk idiom
// (lvlath), generalized off table entries recorded per node instead of a
// single-run prev map.
package path

import "errors"

// Sentinel errors returned by Trace.
var (
	// ErrStartNotFound indicates start is not a node with a recorded
	// table in the snapshot passed to Trace.
	ErrStartNotFound = errors.New("path: start node has no table entry")

	// ErrNoRoute indicates some node along the walk has no table entry
	// reachable to destination under the requested selection policy.
	ErrNoRoute = errors.New("path: no route to destination")

	// ErrCycleDetected indicates the walk revisited a node. This should
	// never happen given the routing core's invariants — a parent chain
	// is acyclic by construction — but the guard costs nothing and fails
	// fast on a contract violation rather than looping forever, mirroring
	// dijkstra's upfront negative-weight scan philosophy.
	ErrCycleDetected = errors.New("path: cycle detected while walking parent chain")
)
