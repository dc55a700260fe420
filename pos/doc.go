// Package pos provides Pos, a generic 2D coordinate/vector value type, with
// arithmetic, projection, hashing, text round-tripping and random sampling.
//
// 🚀 What is Pos?
//
//	Pos[T] is a plain two-field value (X, Y) over any integer or floating
//	point element type. It is copied as a unit, compared component-wise and
//	can be used directly as a map key.
//
// ✨ Key features:
//   - arithmetic: Neg, Add, Sub, Scale, Div plus in-place *Assign forms
//   - geometry: Dot, Mag2, Dist2From, Part, Complement, Components
//   - folding: Sum, SumPtrs, SumSeq
//   - text: "(x, y)" via String/Format, inverse via Parse and ParseWith
//   - codecs: JSON and YAML objects {x, y}; decoders also accept "(x, y)"
//   - sampling: Uniform and StandardNormal strategies over any Source
//   - capabilities: HasPosition / Positionable + Translate for host types
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvpos/pos"
//
//	p := pos.New(1, 2)
//	part, rest := p.Components(pos.XUnit) // (1, 0), (0, 2)
//	q, err := pos.Parse[int]("(3, 4)")
//
// Numeric semantics:
//
//	Overflow, division by zero and rounding follow the element type. For
//	integer element types Part and Complement truncate toward zero; Part
//	with a zero direction divides by zero (integer panic, NaN for floats).
//
// Concurrency:
//
//	All value methods are pure. The *Assign mutators and Sampler are not
//	safe for concurrent use on a shared receiver.
package pos
