// File: types.go
// Role: Entry, Policy, and Table value types plus identity/ordering.
package table

import (
	"fmt"

	"github.com/katalvlaran/raindrop/graph"
)

// Policy selects which entries are compared for domination when inserting
// into a Table. See doc.go for the three disciplines.
type Policy int

const (
	// Domination is insert_d: compares the new entry against every
	// existing entry, non-strict.
	Domination Policy = iota

	// StrictDomination is insert_sd: compares against every existing
	// entry, strict — equal (d, δ) pairs coexist.
	StrictDomination

	// PerParent is insert_ppd: compares only against entries that share
	// the new entry's parent.
	PerParent
)

// String renders the Policy using its spec name, for logs and test
// failure messages.
func (p Policy) String() string {
	switch p {
	case Domination:
		return "insert_d"
	case StrictDomination:
		return "insert_sd"
	case PerParent:
		return "insert_ppd"
	default:
		return "unknown policy"
	}
}

// NoParent is the ⊥ sentinel: the destination's identity entry has no
// next hop, and it is the only entry ever inserted with this parent.
const NoParent graph.NodeID = ""

// Entry is one routing-table row: a worst-case delay bound D, a next-hop
// parent Parent (NoParent only for the destination's own sentinel entry),
// and an expected delay Delta.
//
// D, Parent, and Delta form Entry's identity: equality, hashing (a Table
// keys its map by the identity triple returned by Entry.identity, not by
// Entry itself), and Less ordering all derive from this triple alone.
//
// Trail is a non-identity auxiliary field: the ancestor chain of nodes
// this entry's derivation has passed through, destination-nearest first
// (empty for the destination sentinel, grown by appending one node on
// every relaxation hop). It serves two purposes, both private to the
// mechanics of relaxation rather than to an entry's meaning:
//
//   - the per-parent-no-cyclic-entries relaxation discipline refuses to
//     extend an entry across a node already present in its trail;
//   - its length is the "ancestor chain length" the router's considered-
//     table filter compares against |V|-1 (see DESIGN.md's "Per-entry
//     trail auxiliary field" note).
//
// Trail plays no part in Equal, Less, or Table membership.
type Entry struct {
	D      int64
	Parent graph.NodeID
	Delta  int64
	Trail  []graph.NodeID
}

// ChainLen returns the length of the entry's ancestor trail.
func (e Entry) ChainLen() int {
	return len(e.Trail)
}

// String renders the entry's identity triple for logs and test failures.
// Trail is omitted: it carries no identity and would make log lines grow
// with every relaxation hop.
func (e Entry) String() string {
	parent := e.Parent
	if parent == NoParent {
		return fmt.Sprintf("(%d, ⊥, %d)", e.D, e.Delta)
	}

	return fmt.Sprintf("(%d, %s, %d)", e.D, parent, e.Delta)
}

// DestinationEntry is the sentinel entry (0, ⊥, 0) every destination
// table holds and nothing else ever equals.
func DestinationEntry() Entry {
	return Entry{D: 0, Parent: NoParent, Delta: 0, Trail: nil}
}

// identity is the hashable (d, π, δ) triple used as a Table's map key.
type identity struct {
	d     int64
	par   graph.NodeID
	delta int64
}

func (e Entry) identity() identity {
	return identity{d: e.D, par: e.Parent, delta: e.Delta}
}

// Equal reports whether two entries share the same (D, Parent, Delta)
// identity triple. ChainLen is ignored.
func (e Entry) Equal(other Entry) bool {
	return e.identity() == other.identity()
}

// Less orders entries by (D, Parent, Delta), used to produce the
// deterministic sorted form required for diffing and printing.
func (e Entry) Less(other Entry) bool {
	if e.D != other.D {
		return e.D < other.D
	}
	if e.Parent != other.Parent {
		return e.Parent < other.Parent
	}

	return e.Delta < other.Delta
}

// Dominates reports whether a dominates b under policy:
//
//	Domination / PerParent: a.D <= b.D && a.Delta <= b.Delta.
//	StrictDomination:       the above, plus at least one strict inequality.
//
// PerParent callers are expected to have already restricted the
// comparison to entries sharing a parent; Dominates itself does not look
// at Parent (it is the shared predicate used by both Insert and
// CheckPerParentClosure).
func Dominates(a, b Entry, policy Policy) bool {
	nonStrict := a.D <= b.D && a.Delta <= b.Delta
	if !nonStrict {
		return false
	}
	if policy != StrictDomination {
		return true
	}

	return a.D < b.D || a.Delta < b.Delta
}
