// Package table implements the routing-table algebra: entries, the three
// domination disciplines, and table diffs.
//
// An Entry (d, π, δ) is a worst-case delay bound d, a next-hop parent π,
// and an expected delay δ. A Table is a set of entries maintained under
// one of three insertion disciplines (Policy):
//
//	Domination       - insert_d:  drop dominated entries, skip if dominated.
//	StrictDomination - insert_sd: same, but equal entries coexist.
//	PerParent        - insert_ppd: domination restricted to same-parent
//	                   entries, so every downstream neighbour keeps at
//	                   least one entry on hand.
//
// Package table is pure data and comparison logic: no I/O, no graph
// awareness beyond the opaque parent identifier.
package table
