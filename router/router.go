// File: router.go
// Role: Router state, Message, and the two protocol event handlers.
package router

import (
	"fmt"

	"github.com/katalvlaran/raindrop/baruah"
	"github.com/katalvlaran/raindrop/graph"
	"github.com/katalvlaran/raindrop/table"
)

// Message is one diff in flight between two routers. From == "" marks
// the system's origin-seed message that injects the destination's
// identity entry.
type Message struct {
	From graph.NodeID
	To   graph.NodeID
	Diff table.TableDiff
}

// Router is the per-node state machine of the routing core: a node
// identity, the edges feeding into it, and its current routing table.
// Exactly one goroutine interacts with a Router at a time — package
// system's drain loop enforces this, Router itself holds no lock.
type Router struct {
	nodeID   graph.NodeID
	numNodes int // |V|, fixed for the lifetime of the system
	incoming []graph.Edge
	tab      table.Table
}

// New returns a Router for nodeID with an empty table and the given
// incoming-edge list. numNodes is the graph's fixed node count, used by
// consideredTable's (|V|-1) ancestor-chain guard.
func New(nodeID graph.NodeID, numNodes int, incoming []graph.Edge) *Router {
	cp := make([]graph.Edge, len(incoming))
	copy(cp, incoming)

	return &Router{
		nodeID:   nodeID,
		numNodes: numNodes,
		incoming: cp,
		tab:      table.New(),
	}
}

// NodeID returns the router's node identity.
func (r *Router) NodeID() graph.NodeID {
	return r.nodeID
}

// Table returns a clone of the router's current table, safe for the
// caller to retain and mutate independently.
func (r *Router) Table() table.Table {
	return r.tab.Clone()
}

// IncomingEdges returns a copy of the router's current incoming-edge
// list.
func (r *Router) IncomingEdges() []graph.Edge {
	cp := make([]graph.Edge, len(r.incoming))
	copy(cp, r.incoming)

	return cp
}

// SetTable overwrites the router's table directly, bypassing the event
// protocol. Used only by system.RecalculateTables, the oracle bypass —
// never from inside UpdateIncomingEdges/Receive.
func (r *Router) SetTable(t table.Table) {
	r.tab = t.Clone()
}

// consideredTable returns t with every entry whose ancestor chain has
// reached numNodes-1 hops removed. Such entries cannot have arisen from
// a local re-derivation; treating them as inert before contribution
// mirrors the no-cyclic-entries rule the batch solver applies inside one
// Solve call.
func (r *Router) consideredTable(t table.Table) table.Table {
	threshold := r.numNodes - 1

	return t.Filter(func(e table.Entry) bool { return e.ChainLen() < threshold })
}

// contribution computes relax_ppd_nce(edge, ∅, source) — the entries
// edge alone would contribute to the far endpoint's table, given source
// as the near endpoint's table. Both Event A and Event B reduce to this
// one call per edge, differing only in which table plays the role of
// source and which edge is being evaluated.
func contribution(edge graph.Edge, source table.Table) table.Table {
	return baruah.RelaxPerParent(edge, table.New(), source)
}

// UpdateIncomingEdges is Event A: the system has detected that one or
// more of this router's incoming edges changed expected delay
// (worst-case delay and endpoints are unchanged) and supplies the full
// new edge list. For every edge whose contribution to this node's table
// changes, UpdateIncomingEdges emits a diff message addressed to that
// edge's upstream endpoint. The router's stored edge list is replaced
// with newEdges only after every contribution has been evaluated against
// the table as it stood at entry.
//
// Matching old edges to new ones is by (From, To) key, not slice
// position: newEdges may reorder the list, and the result does not
// depend on that order.
//
// Returns ErrContractViolation (wrapping a more specific sentinel) if
// newEdges does not have the same endpoint set as the router's current
// edges, if any edge's worst-case delay differs from its old value, or
// if a new expected delay exceeds its edge's worst-case bound. On error
// the router's state is left unmodified; the caller must discard the
// whole system rather than retry.
func (r *Router) UpdateIncomingEdges(newEdges []graph.Edge) ([]Message, error) {
	if len(newEdges) != len(r.incoming) {
		return nil, fmt.Errorf("%w: %w: had %d incoming edges, got %d",
			ErrContractViolation, ErrEdgeSetMismatch, len(r.incoming), len(newEdges))
	}

	oldByKey := make(map[[2]graph.NodeID]graph.Edge, len(r.incoming))
	for _, e := range r.incoming {
		oldByKey[[2]graph.NodeID{e.From, e.To}] = e
	}

	type pair struct{ old, new graph.Edge }
	pairs := make([]pair, 0, len(newEdges))
	for _, ne := range newEdges {
		key := [2]graph.NodeID{ne.From, ne.To}
		oe, ok := oldByKey[key]
		if !ok {
			return nil, fmt.Errorf("%w: %w: no current edge %s→%s",
				ErrContractViolation, ErrEdgeSetMismatch, ne.From, ne.To)
		}
		if oe.WorstCase != ne.WorstCase {
			return nil, fmt.Errorf("%w: %w: edge %s→%s: had %d, got %d",
				ErrContractViolation, ErrWorstCaseChanged, ne.From, ne.To, oe.WorstCase, ne.WorstCase)
		}
		if ne.Expected > ne.WorstCase {
			return nil, fmt.Errorf("%w: %w: edge %s→%s: expected=%d worst-case=%d",
				ErrContractViolation, ErrExpectedExceedsWorstCase, ne.From, ne.To, ne.Expected, ne.WorstCase)
		}
		pairs = append(pairs, pair{old: oe, new: ne})
	}

	considered := r.consideredTable(r.tab)

	var messages []Message
	for _, p := range pairs {
		oldContrib := contribution(p.old, considered)
		newContrib := contribution(p.new, considered)
		diff := table.Diff(oldContrib, newContrib)
		if !diff.IsEmpty() {
			messages = append(messages, Message{From: r.nodeID, To: p.old.From, Diff: diff})
		}
	}

	r.incoming = make([]graph.Edge, len(newEdges))
	copy(r.incoming, newEdges)

	return messages, nil
}

// Receive is Event B: a diff message has arrived from a downstream
// neighbour. Receive applies the diff to a clone of the table,
// re-evaluates every incoming edge's contribution against the old and
// new clones, and emits a diff upstream for every edge whose
// contribution changed — all before committing the new table, so that
// evaluating edge i never observes a table partway through this
// message's own update.
//
// Receive trusts msg.To == r.nodeID and never inspects it: routing the
// message to the right Router is package system's job, not the
// Router's — an unknown destination in an inbound message is the
// caller's contract to enforce.
func (r *Router) Receive(msg Message) []Message {
	oldConsidered := r.consideredTable(r.tab)
	newTable := msg.Diff.Apply(r.tab.Clone())
	newConsidered := r.consideredTable(newTable)

	var messages []Message
	for _, e := range r.incoming {
		oldContrib := contribution(e, oldConsidered)
		newContrib := contribution(e, newConsidered)
		diff := table.Diff(oldContrib, newContrib)
		if !diff.IsEmpty() {
			messages = append(messages, Message{From: r.nodeID, To: e.From, Diff: diff})
		}
	}

	r.tab = newTable

	return messages
}
