// Package system implements the message bus: single-threaded,
// cooperative dispatch of router.Message values between one Router per
// graph node, coordinating convergence toward the table a from-scratch
// Baruah recomputation would produce.
//
// Build seeds the destination's identity entry and drains the queue to
// populate every router's initial table. SimulateEdgeChange mutates the
// graph's one mutable field — an edge's expected delay — and replays the
// to-side router's Event A, then drains whatever Event B messages that
// triggers. RecalculateTables bypasses the protocol entirely, running
// the batch solver as the test oracle.
//
// Concurrency model: everything here is single-threaded. The processing
// flag guards drain() against re-entrant invocation from
// inside a Router's own event handler — it is not mutual exclusion
// against other goroutines, since this package never spawns any (it
// mirrors core.Graph's locking discipline in spirit, not its mechanism).
package system

import "errors"

// Sentinel errors. ErrContractViolation mirrors package router's: every
// error here leaves the System in an indeterminate state the caller must
// discard and rebuild, never retry.
var (
	// ErrContractViolation marks every error SimulateEdgeChange returns,
	// and the drain loop's unknown-node error, as fatal and
	// non-recoverable. Build's own argument checks (nil graph,
	// ErrDestinationNotFound) are not wrapped with it.
	ErrContractViolation = errors.New("system: contract violation")

	// ErrUnknownDestination indicates a message named a node with no
	// Router — a graph/router-construction bug, since every node of the
	// graph gets a Router in Build.
	ErrUnknownDestination = errors.New("system: message addressed to unknown node")

	// ErrDestinationNotFound indicates the destination passed to Build is
	// not a node of the graph.
	ErrDestinationNotFound = errors.New("system: destination not found in graph")
)
