package pos

// Dot returns a.X*b.X + a.Y*b.Y.
//
// Complexity: O(1).
func Dot[T Scalar](a, b Pos[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Dot is the method form of the package-level Dot.
func (p Pos[T]) Dot(q Pos[T]) T {
	return Dot(p, q)
}

// Mag2 returns the squared magnitude Dot(p, p). No square root is taken, so
// the result stays exact for integer element types.
func (p Pos[T]) Mag2() T {
	return Dot(p, p)
}

// Dist2From returns the squared distance between p and q.
func (p Pos[T]) Dist2From(q Pos[T]) T {
	return q.Sub(p).Mag2()
}

// Part returns the component of p parallel to dir:
//
//	dir * Dot(p, dir) / Mag2(dir)
//
// dir must be non-zero. Integer element types truncate the division.
//
// Complexity: O(1); one Dot, one Mag2, two multiplications, two divisions.
func (p Pos[T]) Part(dir Pos[T]) Pos[T] {
	return dir.Scale(Dot(p, dir)).Div(dir.Mag2())
}

// Complement returns the component of p perpendicular to dir, p - p.Part(dir).
func (p Pos[T]) Complement(dir Pos[T]) Pos[T] {
	return p.Sub(p.Part(dir))
}

// Components splits p relative to dir into (Part, Complement).
// The two results always add back up to p.
//
// Complexity: O(1); Part is computed once and reused for the complement.
func (p Pos[T]) Components(dir Pos[T]) (part, complement Pos[T]) {
	part = p.Part(dir)
	return part, p.Sub(part)
}
