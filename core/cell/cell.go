// core/cell/cell.go
package cell

// Cell is the symbolic state of a single genome position.
type Cell byte

const (
	// Empty marks a position with no transposable element.
	Empty Cell = iota
	// Active marks a position inside a live transposable element.
	Active
	// Disabled marks a position inside a dead transposable element.
	Disabled
)

// Byte returns the one-character rendering of c: '-' for Empty, 'A' for
// Active, 'x' for Disabled.
func (c Cell) Byte() byte {
	switch c {
	case Active:
		return 'A'
	case Disabled:
		return 'x'
	default:
		return '-'
	}
}

func (c Cell) String() string { return string(c.Byte()) }
