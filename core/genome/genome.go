// core/genome/genome.go
package genome

import (
	"errors"

	"tesim-core/cell"
	"tesim-core/registry"
	"tesim-core/store"
)

var (
	// ErrOutOfRange is returned by InsertTE when pos is negative or past
	// the current genome length.
	ErrOutOfRange = errors.New("position out of range of genome")
	// ErrInvalidLength is returned by InsertTE when the element length is
	// below 1.
	ErrInvalidLength = errors.New("element length must be at least 1")
)

// Genome models a circular genome subjected to transposable element (TE)
// insertions. Positions are linear indices from 0; circularity shows up as
// modulo wrapping of insertion positions and copy targets.
//
// A Genome exclusively owns its store and registry. Only derived values
// (ids, lengths, rendered strings, range copies) cross the API boundary.
// Not safe for concurrent use; there is a single mutator by design.
type Genome struct {
	store store.Store
	reg   *registry.Registry
}

// New returns a genome of n empty cells backed by st, which must be empty.
// A non-positive n yields a zero-length genome.
func New(st store.Store, n int) *Genome {
	if n > 0 {
		st.InsertRun(0, cell.Empty, n)
	}
	return &Genome{store: st, reg: registry.New()}
}

// NewSlice returns a genome of n empty cells backed by a contiguous slice.
func NewSlice(n int) *Genome { return New(store.NewSlice(), n) }

// NewRing returns a genome of n empty cells backed by a linked ring.
func NewRing(n int) *Genome { return New(store.NewRing(), n) }

// InsertTE inserts a new TE of the given length at pos and returns its id.
//
// pos is circularized modulo the current genome length, so pos == Len()
// wraps to 0; pos beyond Len(), or negative, is rejected with ErrOutOfRange.
// Any active TE whose span strictly contains the insertion point dies whole:
// its cells turn Disabled and it leaves the registry. Active TEs starting
// after the insertion point shift forward by length. On error the genome is
// unchanged.
func (g *Genome) InsertTE(pos, length int) (int, error) {
	if length < 1 {
		return 0, ErrInvalidLength
	}
	if pos < 0 || pos > g.store.Len() {
		return 0, ErrOutOfRange
	}
	if n := g.store.Len(); n > 0 {
		pos %= n
	}

	for _, e := range g.reg.Entries() {
		switch {
		case e.Range.Contains(pos):
			// Collision: the new element lands inside e. New insertion
			// wins; e dies whole at its pre-splice coordinates.
			g.reg.Remove(e.ID)
			g.store.SetRange(e.Range.Start, e.Range.End, cell.Disabled)
		case e.Range.Start > pos:
			g.reg.Put(e.ID, e.Range.Shift(length))
		}
	}

	id := g.reg.NextID()
	g.reg.Put(id, registry.Range{Start: pos, End: pos + length})
	g.store.InsertRun(pos, cell.Active, length)
	return id, nil
}

// CopyTE copies the active TE te to an offset from its current position and
// returns the copy's id. The offset may be negative; targets outside
// [0, Len()) wrap circularly. The source range is read at call time, so
// copies reflect any shifting caused by earlier insertions. If te is not
// currently active, CopyTE reports false and mutates nothing.
func (g *Genome) CopyTE(te, offset int) (int, bool) {
	rg, ok := g.reg.Get(te)
	if !ok {
		return 0, false
	}
	p := (rg.Start + offset) % g.store.Len()
	if p < 0 {
		p += g.store.Len()
	}
	id, err := g.InsertTE(p, rg.Len())
	if err != nil {
		return 0, false
	}
	return id, true
}

// DisableTE permanently disables te: its cells turn Disabled and its id
// leaves the registry. Disabling an unknown or already-disabled id is a
// no-op.
func (g *Genome) DisableTE(te int) {
	rg, ok := g.reg.Remove(te)
	if !ok {
		return
	}
	g.store.SetRange(rg.Start, rg.End, cell.Disabled)
}

// ActiveTEs returns the currently active ids in ascending order.
func (g *Genome) ActiveTEs() []int { return g.reg.IDs() }

// Span returns the current [start, end) range of an active TE.
func (g *Genome) Span(te int) (start, end int, ok bool) {
	rg, ok := g.reg.Get(te)
	return rg.Start, rg.End, ok
}

// Len returns the current number of cells.
func (g *Genome) Len() int { return g.store.Len() }

// Render linearizes the genome into one character per cell starting at
// index 0: '-' empty, 'A' active, 'x' disabled. The last character is
// conceptually followed by the first.
func (g *Genome) Render() string {
	cs := g.store.Cells()
	b := make([]byte, len(cs))
	for i, c := range cs {
		b[i] = c.Byte()
	}
	return string(b)
}
