// Package lvpos is a small library for 2D coordinates and vectors — a generic
// value type with exact integer geometry, text round-tripping and seeded
// sampling.
//
// 🚀 What is lvpos?
//
//	A pure-Go module built around one type, pos.Pos[T]:
//		• Arithmetic: Neg, Add, Sub, Scale, Div and in-place forms
//		• Geometry: Dot, Mag2, Dist2From, Part, Complement, Components
//		• Text: "(x, y)" rendering and a tolerant parser
//		• Codecs: JSON and YAML
//		• Sampling: uniform / standard normal strategies over any Source
//		• Capabilities: HasPosition / Positionable + Translate
//
// Layout:
//
//	pos/          — the Pos type and everything above
//	internal/cli/ — the lvpos command (cobra)
//	cmd/lvpos/    — binary entry point
//
// Quick example:
//
//	p := pos.New(1, 2)
//	p.Part(pos.XUnit)       // (1, 0)
//	p.Complement(pos.XUnit) // (0, 2)
//
//	go get github.com/katalvlaran/lvpos/pos
package lvpos
