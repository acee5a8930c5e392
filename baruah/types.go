package baruah

import "errors"

// Variant selects which relaxation discipline Solve runs.
type Variant int

const (
	// Original relaxes with insert_sd over |V|-1 passes. It keeps no
	// ancestor trail, matching baruah_modified.py's original_baruah with
	// keep_entries=false.
	Original Variant = iota

	// PerParentNoCyclicEntries relaxes with insert_ppd over 2*(|V|-1)
	// passes, stripping each outgoing neighbour's prior contribution
	// before re-deriving it and refusing to extend an entry across a
	// node already in its own ancestor trail.
	PerParentNoCyclicEntries
)

// String renders the Variant name for logs and test failure messages.
func (v Variant) String() string {
	switch v {
	case Original:
		return "original"
	case PerParentNoCyclicEntries:
		return "ppd_nce"
	default:
		return "unknown variant"
	}
}

// Sentinel errors returned by Solve.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to Solve.
	ErrNilGraph = errors.New("baruah: graph is nil")

	// ErrDestinationNotFound indicates that destination is not a node of
	// the graph.
	ErrDestinationNotFound = errors.New("baruah: destination not found in graph")
)
