// core/store/ring.go
package store

import "tesim-core/cell"

// link is one cell on the ring. Links live in an arena and refer to their
// neighbours by arena index, so the circular structure carries no pointer
// cycles and no per-link allocation.
type link struct {
	val  cell.Cell
	prev int
	next int
}

// RingStore backs a genome with a circular doubly-linked list of cells.
// Arena index 0 is a sentinel that sits "before index 0" and is the fixed
// anchor for every traversal: locating position k always walks k links from
// the sentinel. There is no shortcut for large k.
//
// The genome never shrinks, so links are never freed and the arena only
// grows.
type RingStore struct {
	links  []link
	length int
}

// NewRing returns an empty ring-backed store.
func NewRing() *RingStore {
	return &RingStore{links: []link{{prev: 0, next: 0}}}
}

func (r *RingStore) Len() int { return r.length }

// walk returns the handle reached after k steps forward from the sentinel:
// walk(0) is the sentinel itself, walk(k) is the cell at position k-1.
func (r *RingStore) walk(k int) int {
	h := 0
	for i := 0; i < k; i++ {
		h = r.links[h].next
	}
	return h
}

// insertAfter splices a new link holding c directly after handle h and
// returns the new link's handle.
func (r *RingStore) insertAfter(h int, c cell.Cell) int {
	nxt := r.links[h].next
	n := len(r.links)
	r.links = append(r.links, link{val: c, prev: h, next: nxt})
	r.links[h].next = n
	r.links[nxt].prev = n
	return n
}

func (r *RingStore) InsertRun(at int, c cell.Cell, count int) {
	if count <= 0 {
		return
	}
	h := r.walk(at)
	for i := 0; i < count; i++ {
		h = r.insertAfter(h, c)
	}
	r.length += count
}

func (r *RingStore) SetRange(start, end int, c cell.Cell) {
	h := r.links[r.walk(start)].next
	for i := start; i < end; i++ {
		r.links[h].val = c
		h = r.links[h].next
	}
}

func (r *RingStore) Cells() []cell.Cell {
	out := make([]cell.Cell, 0, r.length)
	h := r.links[0].next
	for i := 0; i < r.length; i++ {
		out = append(out, r.links[h].val)
		h = r.links[h].next
	}
	return out
}
