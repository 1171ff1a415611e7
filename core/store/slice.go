// core/store/slice.go
package store

import "tesim-core/cell"

// SliceStore backs a genome with one contiguous growable slice. Appends are
// amortized O(1); inserting in the middle shifts the tail, O(n).
type SliceStore struct {
	cells []cell.Cell
}

// NewSlice returns an empty slice-backed store.
func NewSlice() *SliceStore { return &SliceStore{} }

func (s *SliceStore) Len() int { return len(s.cells) }

func (s *SliceStore) InsertRun(at int, c cell.Cell, count int) {
	if count <= 0 {
		return
	}
	s.cells = append(s.cells, make([]cell.Cell, count)...)
	copy(s.cells[at+count:], s.cells[at:])
	for i := at; i < at+count; i++ {
		s.cells[i] = c
	}
}

func (s *SliceStore) SetRange(start, end int, c cell.Cell) {
	for i := start; i < end; i++ {
		s.cells[i] = c
	}
}

func (s *SliceStore) Cells() []cell.Cell {
	return append([]cell.Cell(nil), s.cells...)
}
