package pos

import (
	"fmt"
	"io"
)

// String renders p as "(x, y)".
func (p Pos[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// GoString renders p as Go syntax, used by %#v.
func (p Pos[T]) GoString() string {
	return fmt.Sprintf("pos.Pos[%T]{X:%#v, Y:%#v}", p.X, p.X, p.Y)
}

// Format implements fmt.Formatter. The verb and its flags apply to each
// component, so %.2f on a Pos[float64] yields "(1.00, 2.00)". %s behaves
// like %v and %#v yields GoString.
func (p Pos[T]) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = io.WriteString(f, p.GoString())
		return
	}
	if verb == 's' {
		verb = 'v'
	}
	elem := fmt.FormatString(f, verb)
	_, _ = fmt.Fprintf(f, "("+elem+", "+elem+")", p.X, p.Y)
}
