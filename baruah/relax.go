// File: relax.go
// Role: the two relaxation disciplines used by both the batch solver and
// the per-node router's event handlers.
package baruah

import (
	"github.com/katalvlaran/raindrop/graph"
	"github.com/katalvlaran/raindrop/table"
)

// Relax implements relax_original: if Tv is empty, Tu is returned
// unchanged. Otherwise, for every entry in Tv, a new entry is formed by
// extending it across edge and inserted into (a clone of) Tu under
// StrictDomination. No ancestor trail is tracked or consulted.
func Relax(edge graph.Edge, Tu, Tv table.Table) table.Table {
	result := Tu.Clone()
	if Tv.Len() == 0 {
		return result
	}

	dMin := minD(Tv) + edge.WorstCase
	for _, e := range Tv.Entries() {
		newEntry := table.Entry{
			D:      maxInt64(dMin, edge.Expected+e.D),
			Parent: edge.To,
			Delta:  e.Delta + edge.Expected,
		}
		result.Insert(newEntry, table.StrictDomination)
	}

	return result
}

// RelaxPerParent implements relax_ppd_nce: if Tv is empty, Tu is returned
// unchanged. Otherwise every entry in Tu whose Parent is edge.To is
// stripped (this next hop's prior contribution is re-derived from
// scratch), and then each entry in Tv whose ancestor trail does not
// already contain edge.From is extended across edge and inserted under
// PerParent. Entries whose trail contains edge.From are discarded: using
// them would produce a cyclic derivation.
func RelaxPerParent(edge graph.Edge, Tu, Tv table.Table) table.Table {
	result := Tu.Clone()
	if Tv.Len() == 0 {
		return result
	}

	result.RemoveAllWithParent(edge.To)

	dMin := minD(Tv) + edge.WorstCase
	for _, e := range Tv.Entries() {
		if containsNode(e.Trail, edge.From) {
			continue
		}

		trail := make([]graph.NodeID, len(e.Trail), len(e.Trail)+1)
		copy(trail, e.Trail)
		trail = append(trail, edge.To)

		newEntry := table.Entry{
			D:      maxInt64(dMin, edge.Expected+e.D),
			Parent: edge.To,
			Delta:  e.Delta + edge.Expected,
			Trail:  trail,
		}
		result.Insert(newEntry, table.PerParent)
	}

	return result
}

func minD(t table.Table) int64 {
	best, _ := t.Min()

	return best.D
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}

func containsNode(trail []graph.NodeID, node graph.NodeID) bool {
	for _, n := range trail {
		if n == node {
			return true
		}
	}

	return false
}
