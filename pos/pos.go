package pos

import "fmt"

// New returns the position (x, y).
func New[T Scalar](x, y T) Pos[T] {
	return Pos[T]{X: x, Y: y}
}

// Zero returns (0, 0) for the element type T.
func Zero[T Scalar]() Pos[T] {
	return Pos[T]{}
}

// OriginOf is the generic form of Origin.
func OriginOf[T Scalar]() Pos[T] { return Pos[T]{} }

// XUnitOf is the generic form of XUnit.
func XUnitOf[T Scalar]() Pos[T] { return Pos[T]{X: 1} }

// YUnitOf is the generic form of YUnit.
func YUnitOf[T Scalar]() Pos[T] { return Pos[T]{Y: 1} }

// FromTuple converts a two-element array into a Pos. Index 0 becomes X.
func FromTuple[T Scalar](t [2]T) Pos[T] {
	return Pos[T]{X: t[0], Y: t[1]}
}

// Tuple is the inverse of FromTuple.
func (p Pos[T]) Tuple() [2]T {
	return [2]T{p.X, p.Y}
}

// XY returns both components.
func (p Pos[T]) XY() (T, T) {
	return p.X, p.Y
}

// At returns component i: 0 for X, 1 for Y.
// Any other index is a programming error and panics.
func (p Pos[T]) At(i int) T {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	}
	panic(indexPanic(i))
}

// Set overwrites component i in place. Index rules match At.
func (p *Pos[T]) Set(i int, v T) {
	switch i {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	default:
		panic(indexPanic(i))
	}
}

// Equal reports whether p and q have identical components.
func (p Pos[T]) Equal(q Pos[T]) bool {
	return p == q
}

// IsZero reports whether p is the origin.
func (p Pos[T]) IsZero() bool {
	return p == Pos[T]{}
}

func indexPanic(i int) string {
	return fmt.Sprintf("pos: index must be 0 (x) or 1 (y), got %d", i)
}
