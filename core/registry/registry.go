// core/registry/registry.go
package registry

import "sort"

// Range is a half-open [Start, End) span of genome positions. Start < End
// for every registered range.
type Range struct {
	Start int
	End   int
}

// Len returns the number of positions covered by r.
func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether pos falls strictly inside [Start, End).
func (r Range) Contains(pos int) bool { return r.Start <= pos && pos < r.End }

// Shift returns r moved forward by n positions.
func (r Range) Shift(n int) Range { return Range{Start: r.Start + n, End: r.End + n} }

// Entry pairs a transposable element id with its current range.
type Entry struct {
	ID    int
	Range Range
}

// Registry maps live transposable element ids to their current ranges.
// Ids come from a monotone counter starting at 1 and are never reused,
// even after removal.
type Registry struct {
	ranges map[int]Range
	lastID int
}

// New returns an empty registry with the id counter at 0.
func New() *Registry {
	return &Registry{ranges: make(map[int]Range)}
}

// NextID allocates and returns the next element id: 1, 2, 3, ...
func (r *Registry) NextID() int {
	r.lastID++
	return r.lastID
}

// Get returns the range registered for id, if any.
func (r *Registry) Get(id int) (Range, bool) {
	rg, ok := r.ranges[id]
	return rg, ok
}

// Put registers or replaces the range for id.
func (r *Registry) Put(id int, rg Range) {
	r.ranges[id] = rg
}

// Remove deletes id and returns the range it held, if any.
func (r *Registry) Remove(id int) (Range, bool) {
	rg, ok := r.ranges[id]
	if ok {
		delete(r.ranges, id)
	}
	return rg, ok
}

// Len returns the number of registered elements.
func (r *Registry) Len() int { return len(r.ranges) }

// IDs returns the registered ids in ascending order.
func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.ranges))
	for id := range r.ranges {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Entries returns a snapshot of all entries, ascending by id. The snapshot
// is safe to walk while mutating the registry.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.ranges))
	for _, id := range r.IDs() {
		out = append(out, Entry{ID: id, Range: r.ranges[id]})
	}
	return out
}
