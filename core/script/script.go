// core/script/script.go
package script

import "fmt"

// Kind identifies one genome operation in a script.
type Kind int

const (
	Insert Kind = iota
	Copy
	Disable
)

// Op is one parsed script line. A carries pos (insert) or the element id
// (copy, disable); B carries the element length (insert) or the offset
// (copy) and is unused for disable.
type Op struct {
	Kind Kind
	A    int
	B    int
	Line int
}

func (o Op) String() string {
	switch o.Kind {
	case Insert:
		return fmt.Sprintf("insert %d %d", o.A, o.B)
	case Copy:
		return fmt.Sprintf("copy %d %d", o.A, o.B)
	case Disable:
		return fmt.Sprintf("disable %d", o.A)
	default:
		return fmt.Sprintf("op(%d)", int(o.Kind))
	}
}
