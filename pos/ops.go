package pos

// Neg returns (-x, -y). Unsigned element types wrap.
func (p Pos[T]) Neg() Pos[T] {
	return Pos[T]{X: -p.X, Y: -p.Y}
}

// Add returns p + q component-wise.
func (p Pos[T]) Add(q Pos[T]) Pos[T] {
	return Pos[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q component-wise.
func (p Pos[T]) Sub(q Pos[T]) Pos[T] {
	return Pos[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both components by k.
func (p Pos[T]) Scale(k T) Pos[T] {
	return Pos[T]{X: p.X * k, Y: p.Y * k}
}

// Div divides both components by k. Integer element types truncate toward
// zero and panic when k == 0.
func (p Pos[T]) Div(k T) Pos[T] {
	return Pos[T]{X: p.X / k, Y: p.Y / k}
}

// AddAssign sets p to p + q.
func (p *Pos[T]) AddAssign(q Pos[T]) {
	p.X += q.X
	p.Y += q.Y
}

// SubAssign sets p to p - q.
func (p *Pos[T]) SubAssign(q Pos[T]) {
	p.X -= q.X
	p.Y -= q.Y
}

// ScaleAssign sets p to p * k.
func (p *Pos[T]) ScaleAssign(k T) {
	p.X *= k
	p.Y *= k
}

// DivAssign sets p to p / k.
func (p *Pos[T]) DivAssign(k T) {
	p.X /= k
	p.Y /= k
}
