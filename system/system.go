// File: system.go
// Role: System construction, the single-writer drain loop, and the
// external operations the message bus exposes.
package system

import (
	"fmt"

	"github.com/katalvlaran/raindrop/baruah"
	"github.com/katalvlaran/raindrop/graph"
	"github.com/katalvlaran/raindrop/router"
	"github.com/katalvlaran/raindrop/table"
)

// System coordinates one Router per node of a fixed graph toward a fixed
// destination, via a FIFO message queue drained to fixpoint after every
// external event.
type System struct {
	g           *graph.Graph
	destination graph.NodeID
	routers     map[graph.NodeID]*router.Router

	queue        []router.Message
	processing   bool
	messagesSent int
	log          []string
}

// Build constructs a System over g for destination: one Router per node,
// seeded by enqueueing the origin message {from=⊥, to=destination,
// diff=({}, {(0,⊥,0)})} and draining the queue, so that every router
// holds its initial Baruah table by the time Build returns.
func Build(g *graph.Graph, destination graph.NodeID) (*System, error) {
	if g == nil {
		return nil, fmt.Errorf("system: %w", baruah.ErrNilGraph)
	}
	if !g.HasNode(destination) {
		return nil, fmt.Errorf("%w: %s", ErrDestinationNotFound, destination)
	}

	s := &System{
		g:           g,
		destination: destination,
		routers:     make(map[graph.NodeID]*router.Router, g.NodeCount()),
	}
	for _, n := range g.Nodes() {
		s.routers[n] = router.New(n, g.NodeCount(), g.InEdges(n))
	}

	seedTable := table.New()
	seedTable.Insert(table.DestinationEntry(), table.PerParent)
	seed := router.Message{
		From: table.NoParent,
		To:   destination,
		Diff: table.TableDiff{Removed: table.New(), Added: seedTable},
	}
	s.logf("init: seeding destination %s with identity entry", destination)
	s.enqueue(seed)
	if err := s.drain(); err != nil {
		return nil, err
	}

	return s, nil
}

// SimulateEdgeChange mutates edge (u, v)'s expected delay in place, then
// replays v's Router.UpdateIncomingEdges with its refreshed incoming-edge
// list and drains every resulting Event B message to fixpoint.
// messagesSent is reset to zero before the mutation, so MessagesSent
// afterward reports exactly this call's propagation cost — zero iff the
// change induced no table changes anywhere.
func (s *System) SimulateEdgeChange(u, v graph.NodeID, newExpected int64) error {
	s.messagesSent = 0

	if err := s.g.SetExpectedDelay(u, v, newExpected); err != nil {
		return fmt.Errorf("%w: SimulateEdgeChange(%s→%s): %w", ErrContractViolation, u, v, err)
	}

	r, ok := s.routers[v]
	if !ok {
		return fmt.Errorf("%w: %w: %s", ErrContractViolation, ErrUnknownDestination, v)
	}

	s.logf("simulate_edge_change %s→%s: new expected delay %d", u, v, newExpected)
	msgs, err := r.UpdateIncomingEdges(s.g.InEdges(v))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrContractViolation, err)
	}
	for _, m := range msgs {
		s.enqueue(m)
	}

	return s.drain()
}

// Tables returns a snapshot mapping each node to a deep clone of its
// Router's current table, safe for the caller to retain.
func (s *System) Tables() map[graph.NodeID]table.Table {
	out := make(map[graph.NodeID]table.Table, len(s.routers))
	for n, r := range s.routers {
		out[n] = r.Table()
	}

	return out
}

// RecalculateTables bypasses the incremental protocol entirely: it runs
// the batch solver with PerParentNoCyclicEntries over the System's
// current graph and overwrites every Router's table with the result.
// This is the oracle the property tests compare the incrementally-
// converged tables against.
func (s *System) RecalculateTables() error {
	tabs, err := baruah.Solve(s.g, s.destination, baruah.PerParentNoCyclicEntries)
	if err != nil {
		return err
	}
	for n, t := range tabs {
		s.routers[n].SetTable(t)
	}

	return nil
}

// MessagesSent returns the number of messages dispatched since the most
// recent SimulateEdgeChange call (or since Build, if none has run yet).
func (s *System) MessagesSent() int {
	return s.messagesSent
}

// Logs returns the ordered prose log of protocol steps taken so far.
func (s *System) Logs() []string {
	out := make([]string, len(s.log))
	copy(out, s.log)

	return out
}

func (s *System) logf(format string, args ...any) {
	s.log = append(s.log, fmt.Sprintf(format, args...))
}

func (s *System) enqueue(msg router.Message) {
	s.queue = append(s.queue, msg)
}

// drain processes every queued message to fixpoint, one at a time. The
// processing flag guards against re-entrant drain invocations — a
// Router's Receive never calls back into the system synchronously in
// this implementation, but the guard documents and enforces the one-
// router-active-at-a-time invariant rather than relying on that fact
// silently holding.
func (s *System) drain() error {
	if s.processing {
		return nil
	}
	s.processing = true
	defer func() { s.processing = false }()

	for len(s.queue) > 0 {
		msg := s.queue[0]
		s.queue = s.queue[1:]

		r, ok := s.routers[msg.To]
		if !ok {
			return fmt.Errorf("%w: %w: %s", ErrContractViolation, ErrUnknownDestination, msg.To)
		}

		s.messagesSent++
		s.logf("dispatch %s→%s: %d removed, %d added", msg.From, msg.To, msg.Diff.Removed.Len(), msg.Diff.Added.Len())

		for _, out := range r.Receive(msg) {
			s.enqueue(out)
		}
	}

	return nil
}
