// core/store/store.go
package store

import "tesim-core/cell"

// Store is the positional backing for a genome: an ordered sequence of
// cells that grows on insertion and never shrinks.
//
// The genome engine validates all indices before calling, so
// implementations may assume 0 <= at <= Len() for InsertRun and
// 0 <= start <= end <= Len() for SetRange.
//
// Two implementations are provided: SliceStore (contiguous, O(n) middle
// insert, O(1) indexing) and RingStore (circular doubly-linked list, O(1)
// splice after a located link, O(k) locate). Both must yield identical
// Cells() for identical operation histories.
type Store interface {
	// Len returns the current number of cells.
	Len() int
	// InsertRun inserts count copies of c starting at index at, shifting
	// all subsequent cells forward by count.
	InsertRun(at int, c cell.Cell, count int)
	// SetRange overwrites cells [start, end) with c.
	SetRange(start, end int, c cell.Cell)
	// Cells returns the cells in index order starting at 0. The returned
	// slice is a copy; callers cannot alias store internals through it.
	Cells() []cell.Cell
}
