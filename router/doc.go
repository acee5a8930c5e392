// Package router implements the per-node state machine of the routing
// core: one owned Table, one owned list of incoming edges, and the two
// event handlers that react to a local delay change and to an incoming
// diff from a downstream neighbour.
//
// A Router never reads another router's table, and never calls into the
// graph directly — package system reads the graph once per event and
// hands the router exactly the edges it needs. This keeps the per-node
// view narrow ("graph mutation lives outside routers") and is what makes
// a future sharded/actor-per-router rewrite straightforward.
//
// Event A, UpdateIncomingEdges, fires when the system detects that one of
// a node's incoming edges changed its expected delay: the router
// re-evaluates, from its own table, what that edge contributes to the
// upstream node's table under the per-parent-no-cyclic-entries
// discipline and, if the contribution changed, emits a diff upstream. Event B, Receive, fires when such a
// diff arrives from a downstream neighbour: the router applies it to a
// clone of its table, re-evaluates every incoming edge's contribution
// against the old and new clones, and only then commits the new table —
// never partway through, so that evaluating edge i never sees edge i-1's
// diff already folded in.
//
// Both handlers share consideredTable, the (|V|-1)-ancestor-chain guard:
// entries whose derivation chain has already reached |V|-1 hops are
// excluded before being offered to relaxation, because they
// cannot have arisen from a local re-derivation and would otherwise
// propagate without ever settling.
package router

import "errors"

// Sentinel errors. ErrContractViolation is the fatal kind assigned to
// UpdateIncomingEdges precondition failures: the caller must discard the
// System and rebuild, never retry. It is always wrapped alongside a more
// specific sentinel naming which precondition failed, e.g.
// fmt.Errorf("%w: %w", ErrContractViolation, ErrWorstCaseChanged).
var (
	// ErrContractViolation marks every error UpdateIncomingEdges can
	// return as fatal and non-recoverable.
	ErrContractViolation = errors.New("router: contract violation")

	// ErrEdgeSetMismatch indicates the new incoming-edge list does not
	// have the same (From, To) endpoints as the current one.
	ErrEdgeSetMismatch = errors.New("router: new edge set does not match current endpoints")

	// ErrWorstCaseChanged indicates a new edge's worst-case delay differs
	// from its old value; only expected delay may change.
	ErrWorstCaseChanged = errors.New("router: worst-case delay must not change")

	// ErrExpectedExceedsWorstCase indicates a new edge's expected delay
	// exceeds its worst-case bound.
	ErrExpectedExceedsWorstCase = errors.New("router: expected delay exceeds worst-case delay")
)
