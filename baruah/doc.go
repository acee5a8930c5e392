// Package baruah implements the batch routing-table solver: computing, in
// one shot over a static graph, every node's worst-case-delay-bounded
// routing table for a fixed destination.
//
// Overview:
//
//   - Tables are initialized empty except for the destination, which holds
//     the sentinel entry (0, ⊥, 0).
//   - The solver relaxes every edge repeatedly, pushing entries "backwards"
//     from downstream tables into upstream tables, until no further passes
//     can introduce a change a fixed-point scheme bounded above by a fixed
//     number of rounds rather than detected by convergence.
//   - Two variants trade off table size against cyclic-derivation safety:
//     Original (insert_sd, |V|-1 passes, no cyclic guard) and
//     PerParentNoCyclicEntries (insert_ppd, 2*(|V|-1) passes, ancestor-
//     trail-guarded).
//
// Relationship to the per-node router: Solve is the oracle a distributed
// deployment of router.Router values must agree with once their message
// queues have drained. It shares its relaxation arithmetic with the router
// (see Relax and RelaxPerParent) but owns no persistent state across calls.
package baruah
