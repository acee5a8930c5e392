// File: invariant.go
// Role: the one runtime-checkable table invariant — domination closure
// under per-parent comparison — exposed as a function rather than
// enforced inline, since Insert(..., PerParent) already guarantees it by
// construction; this is a verification aid for property tests, not a
// hot-path check.
package table

import (
	"errors"
	"fmt"
)

// ErrInvariantBroken indicates a Table reached a state inconsistent with
// the domination discipline it is supposed to uphold. Intended for
// property tests and debugging, not for recovery: a table violating its
// own discipline is a bug in the code that built it.
var ErrInvariantBroken = errors.New("table: invariant broken")

// CheckPerParentClosure verifies domination closure under per-parent
// comparison: within t, no two entries sharing a parent stand in the
// (non-strict) domination relation. Returns ErrInvariantBroken, naming
// the offending pair, on the first violation found; nil if t is closed.
func CheckPerParentClosure(t Table) error {
	entries := t.Entries()
	for i, a := range entries {
		for j, b := range entries {
			if i == j || a.Parent != b.Parent {
				continue
			}
			if Dominates(a, b, Domination) {
				return fmt.Errorf("%w: entry %s dominates same-parent entry %s", ErrInvariantBroken, a, b)
			}
		}
	}

	return nil
}
