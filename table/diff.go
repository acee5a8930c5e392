// File: diff.go
// Role: TableDiff — the (removed, added) pair describing how one table
// differs from another, its composition, inversion, and application.
// Diffs compose by set-union: merging two diffs never drops an entry.
package table

// TableDiff is the difference between an old and a new Table: entries
// present in the old table but not the new one (Removed), and entries
// present in the new table but not the old one (Added). TableDiff is the
// unit of communication between routers (router.Message.Diff).
type TableDiff struct {
	Removed Table
	Added   Table
}

// NewDiff returns an empty TableDiff — the zero element under Merge.
func NewDiff() TableDiff {
	return TableDiff{Removed: New(), Added: New()}
}

// Len returns the total number of removed and added entries.
func (d TableDiff) Len() int {
	return d.Removed.Len() + d.Added.Len()
}

// IsEmpty reports whether the diff carries no changes at all.
func (d TableDiff) IsEmpty() bool {
	return d.Len() == 0
}

// Merge composes two diffs by a literal set-union of their Removed and
// Added tables, by identity key — never through a domination policy,
// which would let an entry in other silently evict an unrelated entry
// already present (Dominates compares only (D, Delta), not Parent).
func (d TableDiff) Merge(other TableDiff) TableDiff {
	merged := TableDiff{Removed: d.Removed.Clone(), Added: d.Added.Clone()}
	for k, e := range other.Removed.entries {
		merged.Removed.entries[k] = e
	}
	for k, e := range other.Added.entries {
		merged.Added.entries[k] = e
	}

	return merged
}

// Inverse swaps Removed and Added, so applying Diff(old, new) and then
// its Inverse to new recovers old.
func (d TableDiff) Inverse() TableDiff {
	return TableDiff{Removed: d.Added, Added: d.Removed}
}

// Apply returns a new table built by removing d.Removed's entries from t
// and inserting d.Added's entries, by identity (not through a domination
// policy — a diff names exact entries to add/remove, the insertion
// decision was already made by whoever produced the diff).
func (d TableDiff) Apply(t Table) Table {
	result := t.Clone()
	for k := range d.Removed.entries {
		delete(result.entries, k)
	}
	for k, e := range d.Added.entries {
		result.entries[k] = e
	}

	return result
}

// Diff computes the TableDiff that transforms oldTable into newTable:
// entries only in oldTable are Removed, entries only in newTable are
// Added. Entries present in both (by identity) are neither.
func Diff(oldTable, newTable Table) TableDiff {
	d := NewDiff()
	for k, e := range oldTable.entries {
		if _, ok := newTable.entries[k]; !ok {
			d.Removed.entries[k] = e
		}
	}
	for k, e := range newTable.entries {
		if _, ok := oldTable.entries[k]; !ok {
			d.Added.entries[k] = e
		}
	}

	return d
}
