package pos

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the element types Pos can carry.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float is the subset of Scalar that supports normal sampling.
type Float interface {
	constraints.Float
}

// Pos is a 2D coordinate or vector.
//
// The zero value is the origin. Pos is comparable, so == compares both
// components and Pos values can be used as map keys.
type Pos[T Scalar] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
}

// posFields mirrors Pos without its methods; decoders use it to avoid
// recursing into their own Unmarshal implementations.
type posFields[T Scalar] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
}

var (
	// Origin is (0, 0).
	Origin = Pos[int]{0, 0}
	// XUnit is the unit vector of the X axis.
	XUnit = Pos[int]{1, 0}
	// YUnit is the unit vector of the Y axis.
	YUnit = Pos[int]{0, 1}
)

// Sentinel errors.
var (
	// ErrSyntax is returned by Parse and ParseWith (and the decoders built on
	// them) when the input is not of the form "(x, y)".
	ErrSyntax = errors.New("pos: expected string of form (T, T)")

	// ErrUnsupportedElement indicates that the element type cannot be handled
	// by the requested operation (e.g. normal sampling of an integer type).
	ErrUnsupportedElement = errors.New("pos: unsupported element type")

	// ErrBadStrategy indicates an unknown sampling Strategy value.
	ErrBadStrategy = errors.New("pos: unknown sampling strategy")
)
