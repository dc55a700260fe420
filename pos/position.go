package pos

// HasPosition is implemented by types that logically sit at a Pos.
type HasPosition[T Scalar] interface {
	// GetPosition returns a copy of the position.
	GetPosition() Pos[T]
}

// Positionable is a HasPosition whose position can be replaced.
//
// SetPosition follows value semantics: it returns the updated S and leaves
// the receiver's caller to keep or discard it. A host type embedding Pos[T]
// gets GetPosition for free but must declare its own SetPosition, because
// the promoted one returns Pos[T] rather than S.
//
// Embedding promotes the rest of Pos's method set as well. Format, String
// and GoString make fmt print the host as its position alone, and
// UnmarshalJSON / UnmarshalYAML on *Pos make the decoders fill only the
// position and drop every other field. Hosts that print or decode
// themselves should hold Pos in a named field, or declare those methods.
type Positionable[T Scalar, S any] interface {
	HasPosition[T]
	SetPosition(p Pos[T]) S
}

// Translate moves s by d using only GetPosition and SetPosition.
func Translate[T Scalar, S Positionable[T, S]](s S, d Pos[T]) S {
	return s.SetPosition(d.Add(s.GetPosition()))
}

// GetPosition makes every Pos a HasPosition of itself.
func (p Pos[T]) GetPosition() Pos[T] {
	return p
}

// SetPosition makes every Pos a Positionable of itself; it returns q.
func (p Pos[T]) SetPosition(q Pos[T]) Pos[T] {
	return q
}
