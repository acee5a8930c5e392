package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/raindrop/table"
)

func TestInsert_Domination_DropsDominatedAndSkipsWhenDominated(t *testing.T) {
	tb := table.New()
	a := table.Entry{D: 10, Parent: "x", Delta: 5}
	b := table.Entry{D: 8, Parent: "y", Delta: 3} // dominates a

	require.True(t, tb.Insert(a, table.Domination))
	require.True(t, tb.Insert(b, table.Domination))

	assert.Equal(t, 1, tb.Len())
	assert.Equal(t, []table.Entry{b}, tb.Entries())

	// c is dominated by b, so it must be rejected.
	c := table.Entry{D: 9, Parent: "z", Delta: 4}
	assert.False(t, tb.Insert(c, table.Domination))
	assert.Equal(t, 1, tb.Len())
}

func TestInsert_StrictDomination_EquivalentEntriesCoexist(t *testing.T) {
	tb := table.New()
	a := table.Entry{D: 10, Parent: "x", Delta: 5}
	b := table.Entry{D: 10, Parent: "y", Delta: 5} // equal (D, Delta), different parent

	require.True(t, tb.Insert(a, table.StrictDomination))
	require.True(t, tb.Insert(b, table.StrictDomination))
	assert.Equal(t, 2, tb.Len())
}

func TestInsert_PerParent_DistinctParentsNeverEliminateEachOther(t *testing.T) {
	tb := table.New()
	viaX := table.Entry{D: 20, Parent: "x", Delta: 10}
	viaY := table.Entry{D: 5, Parent: "y", Delta: 2} // strictly better, different parent

	require.True(t, tb.Insert(viaX, table.PerParent))
	require.True(t, tb.Insert(viaY, table.PerParent))
	assert.Equal(t, 2, tb.Len(), "per-parent retention must keep one entry per neighbour")

	// A better entry via x should still evict the worse one via x.
	betterViaX := table.Entry{D: 19, Parent: "x", Delta: 9}
	require.True(t, tb.Insert(betterViaX, table.PerParent))
	assert.Equal(t, 2, tb.Len())
	assert.ElementsMatch(t, []table.Entry{betterViaX, viaY}, tb.Entries())
}

func TestRemoveAllWithParent(t *testing.T) {
	tb := table.New()
	// The two "x" entries are incomparable (neither dominates the
	// other), so both survive insertion alongside the "y" entry.
	tb.Insert(table.Entry{D: 1, Parent: "x", Delta: 5}, table.PerParent)
	tb.Insert(table.Entry{D: 2, Parent: "y", Delta: 2}, table.PerParent)
	tb.Insert(table.Entry{D: 5, Parent: "x", Delta: 1}, table.PerParent)
	require.Equal(t, 3, tb.Len())

	removed := tb.RemoveAllWithParent("x")
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, tb.Len())
	assert.Equal(t, "y", tb.Entries()[0].Parent)
}

func TestDiff_RoundTripIdempotence(t *testing.T) {
	oldTable := table.New()
	oldTable.Insert(table.Entry{D: 10, Parent: "a", Delta: 4}, table.PerParent)
	oldTable.Insert(table.Entry{D: 20, Parent: "b", Delta: 8}, table.PerParent)

	newTable := table.New()
	newTable.Insert(table.Entry{D: 10, Parent: "a", Delta: 4}, table.PerParent)
	newTable.Insert(table.Entry{D: 15, Parent: "c", Delta: 6}, table.PerParent)

	diff := table.Diff(oldTable, newTable)
	require.True(t, diff.Apply(oldTable).Equal(newTable))

	roundTripped := diff.Inverse().Apply(newTable)
	assert.True(t, roundTripped.Equal(oldTable))
}

func TestDiff_EmptyWhenTablesEqual(t *testing.T) {
	a := table.New()
	a.Insert(table.Entry{D: 1, Parent: "p", Delta: 1}, table.PerParent)
	b := a.Clone()

	assert.True(t, table.Diff(a, b).IsEmpty())
}

func TestMerge_UnionsBothSides(t *testing.T) {
	d1 := table.NewDiff()
	d1.Added.Insert(table.Entry{D: 1, Parent: "a", Delta: 1}, table.PerParent)

	d2 := table.NewDiff()
	d2.Removed.Insert(table.Entry{D: 2, Parent: "b", Delta: 2}, table.PerParent)

	merged := d1.Merge(d2)
	assert.Equal(t, 1, merged.Added.Len())
	assert.Equal(t, 1, merged.Removed.Len())
}

// TestMerge_KeepsEntriesThatCollideUnderDomination guards against Merge
// silently dropping an entry whose (D, Delta) pair is dominated by
// another entry carried on the other side of the merge but whose Parent
// differs: Dominates ignores Parent, so a domination-filtered union
// would wrongly eliminate one of two genuinely distinct entries.
func TestMerge_KeepsEntriesThatCollideUnderDomination(t *testing.T) {
	viaX := table.Entry{D: 5, Parent: "x", Delta: 5}
	viaY := table.Entry{D: 5, Parent: "y", Delta: 5} // same (D, Delta), distinct parent

	d1 := table.NewDiff()
	d1.Added.Insert(viaX, table.PerParent)

	d2 := table.NewDiff()
	d2.Added.Insert(viaY, table.PerParent)

	merged := d1.Merge(d2)
	assert.Equal(t, 2, merged.Added.Len())
	assert.ElementsMatch(t, []table.Entry{viaX, viaY}, merged.Added.Entries())
}

func TestParetoProjection_CollapsesPerParentToFrontier(t *testing.T) {
	// Mirrors node 2's frontier in the classic Baruah-paper scenario:
	// (15,4,12) and (20,3,8) are genuinely incomparable (neither
	// dominates the other).
	ppd := table.New()
	ppd.Insert(table.Entry{D: 15, Parent: "4", Delta: 12}, table.PerParent)
	ppd.Insert(table.Entry{D: 20, Parent: "3", Delta: 8}, table.PerParent)
	// Strictly dominated by the entry via "3"; under PerParent it survives
	// because the parents differ, but the sd projection must drop it.
	ppd.Insert(table.Entry{D: 21, Parent: "5", Delta: 9}, table.PerParent)

	frontier := ppd.ParetoProjection()
	assert.Contains(t, frontier, [2]int64{15, 12})
	assert.Contains(t, frontier, [2]int64{20, 8})
	assert.NotContains(t, frontier, [2]int64{21, 9})
}

func TestDominates_StrictRequiresOneStrictInequality(t *testing.T) {
	a := table.Entry{D: 10, Delta: 5}
	b := table.Entry{D: 10, Delta: 5}
	assert.True(t, table.Dominates(a, b, table.Domination))
	assert.False(t, table.Dominates(a, b, table.StrictDomination))

	c := table.Entry{D: 9, Delta: 5}
	assert.True(t, table.Dominates(c, b, table.StrictDomination))
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "insert_d", table.Domination.String())
	assert.Equal(t, "insert_sd", table.StrictDomination.String())
	assert.Equal(t, "insert_ppd", table.PerParent.String())
}
