package pos_test

import (
	"testing"

	"github.com/katalvlaran/lvpos/pos"
	"github.com/stretchr/testify/assert"
)

// TestNew_Components checks constructor, field access and XY.
func TestNew_Components(t *testing.T) {
	p := pos.New(1, 2)
	assert.Equal(t, 1, p.X)
	assert.Equal(t, 2, p.Y)

	x, y := p.XY()
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)
}

// TestZero_IsOrigin verifies that the default value is (0, 0) for several element types.
func TestZero_IsOrigin(t *testing.T) {
	assert.Equal(t, pos.Origin, pos.Zero[int]())
	assert.Equal(t, pos.Pos[float64]{}, pos.Zero[float64]())
	assert.True(t, pos.Zero[uint8]().IsZero())
	assert.False(t, pos.XUnit.IsZero())
}

// TestGenericConstants checks the generic forms of the named constants.
func TestGenericConstants(t *testing.T) {
	assert.Equal(t, pos.Origin, pos.OriginOf[int]())
	assert.Equal(t, pos.XUnit, pos.XUnitOf[int]())
	assert.Equal(t, pos.YUnit, pos.YUnitOf[int]())
	assert.Equal(t, pos.New(1.0, 0.0), pos.XUnitOf[float64]())
	assert.Equal(t, pos.New[int8](0, 1), pos.YUnitOf[int8]())
}

// TestTuple_RoundTrip verifies lossless conversion to and from [2]T.
func TestTuple_RoundTrip(t *testing.T) {
	p := pos.New(-3, 7)
	assert.Equal(t, [2]int{-3, 7}, p.Tuple())
	assert.Equal(t, p, pos.FromTuple(p.Tuple()))
	assert.Equal(t, pos.New(1.5, 2.5), pos.FromTuple([2]float64{1.5, 2.5}))
}

// TestAt_Index checks index 0/1 and the panic message for anything else.
func TestAt_Index(t *testing.T) {
	p := pos.New(1, 2)
	assert.Equal(t, 1, p.At(0))
	assert.Equal(t, 2, p.At(1))

	assert.PanicsWithValue(t, "pos: index must be 0 (x) or 1 (y), got 2", func() { p.At(2) })
	assert.PanicsWithValue(t, "pos: index must be 0 (x) or 1 (y), got -1", func() { p.At(-1) })
}

// TestSet_Index checks in-place indexed writes.
func TestSet_Index(t *testing.T) {
	p := pos.New(1, 2)
	p.Set(0, 10)
	p.Set(1, 20)
	assert.Equal(t, pos.New(10, 20), p)

	assert.PanicsWithValue(t, "pos: index must be 0 (x) or 1 (y), got 5", func() { p.Set(5, 0) })
	assert.Equal(t, pos.New(10, 20), p, "failed Set must not modify p")
}

// TestEqual_ComponentWise checks equality and use as a map key.
func TestEqual_ComponentWise(t *testing.T) {
	assert.True(t, pos.New(1, 2).Equal(pos.New(1, 2)))
	assert.False(t, pos.New(1, 2).Equal(pos.New(2, 1)))
	assert.True(t, pos.New(1, 2) == pos.New(1, 2))

	seen := map[pos.Pos[int]]string{pos.New(1, 2): "a"}
	seen[pos.New(2, 1)] = "b"
	seen[pos.New(1, 2)] = "c"
	assert.Len(t, seen, 2)
	assert.Equal(t, "c", seen[pos.New(1, 2)])
}
