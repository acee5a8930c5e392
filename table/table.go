// File: table.go
// Role: Table — a set of Entry values, insertion under the three
// domination disciplines, removal by parent, cloning, and equality.
package table

import "sort"

// Table is a set of routing-table entries. No two entries in a Table
// share an identity triple; iteration order is never observable — use
// Entries for a deterministic, sorted view.
type Table struct {
	entries map[identity]Entry
}

// New returns an empty Table.
func New() Table {
	return Table{entries: make(map[identity]Entry)}
}

// Len returns the number of entries in the table.
func (t Table) Len() int {
	return len(t.entries)
}

// Entries returns every entry in the table, sorted by (D, Parent, Delta)
// so two tables with the same members always print and compare the same
// way.
func (t Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Min returns the entry with the smallest D in the table (ties broken by
// Less) and true, or the zero Entry and false if the table is empty.
// This is the "min{e.d | e ∈ T_v}" operand of the relaxation formula.
func (t Table) Min() (Entry, bool) {
	var (
		best  Entry
		found bool
	)
	for _, e := range t.entries {
		if !found || e.D < best.D || (e.D == best.D && e.Less(best)) {
			best, found = e, true
		}
	}

	return best, found
}

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	clone := New()
	for k, v := range t.entries {
		clone.entries[k] = v
	}

	return clone
}

// Equal reports whether two tables hold the same set of entries (by
// identity triple; ChainLen is ignored, matching Entry.Equal).
func (t Table) Equal(other Table) bool {
	if len(t.entries) != len(other.entries) {
		return false
	}
	for k := range t.entries {
		if _, ok := other.entries[k]; !ok {
			return false
		}
	}

	return true
}

// RemoveAllWithParent deletes every entry whose Parent equals parent,
// returning the count removed. Used before re-deriving a next hop's
// contribution from scratch (relax_ppd_nce's "strip from T_u every entry
// with parent v").
func (t *Table) RemoveAllWithParent(parent string) int {
	removed := 0
	for k, e := range t.entries {
		if e.Parent == parent {
			delete(t.entries, k)
			removed++
		}
	}

	return removed
}

// Insert adds e to the table under policy, applying the corresponding
// domination rule (doc.go). It returns true iff e was actually inserted
// (false if an existing entry dominated it outright).
//
// This is the single insertion entrypoint: callers choose the discipline
// via Policy rather than calling three separate methods.
func (t *Table) Insert(e Entry, policy Policy) bool {
	shouldInsert := true
	var toRemove []identity

	for k, existing := range t.entries {
		if policy == PerParent && existing.Parent != e.Parent {
			continue
		}

		if Dominates(existing, e, policy) {
			shouldInsert = false
			break
		}
		if Dominates(e, existing, policy) {
			toRemove = append(toRemove, k)
		}
	}

	if !shouldInsert {
		return false
	}

	for _, k := range toRemove {
		delete(t.entries, k)
	}
	t.entries[e.identity()] = e

	return true
}

// Filter returns a new Table holding exactly the entries of t for which
// keep reports true. Entries are copied verbatim (Trail included), so
// Filter never perturbs an entry's identity or ancestor trail — it only
// decides membership. Used by the router's considered-table guard, which
// drops entries whose ancestor chain has reached |V|-1 hops before they
// are offered to relaxation.
func (t Table) Filter(keep func(Entry) bool) Table {
	out := New()
	for k, e := range t.entries {
		if keep(e) {
			out.entries[k] = e
		}
	}

	return out
}

// ParetoProjection applies insert_sd to every entry of t, in ascending
// (D, Parent, Delta) order, and returns the resulting Pareto frontier as
// a set of (D, Delta) pairs. This is the equivalence check that applying
// insert_sd to the per-parent table yields the same Pareto frontier as
// the strict-domination table.
func (t Table) ParetoProjection() map[[2]int64]struct{} {
	projected := New()
	for _, e := range t.Entries() {
		projected.Insert(Entry{D: e.D, Parent: e.Parent, Delta: e.Delta}, StrictDomination)
	}

	frontier := make(map[[2]int64]struct{}, projected.Len())
	for _, e := range projected.Entries() {
		frontier[[2]int64{e.D, e.Delta}] = struct{}{}
	}

	return frontier
}
