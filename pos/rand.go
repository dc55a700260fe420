package pos

import (
	"math/rand"
	"reflect"
)

// Source is the randomness consumed by the sampling strategies.
// *math/rand.Rand satisfies it.
type Source interface {
	Uint64() uint64
	Float64() float64
	NormFloat64() float64
}

// Distribution produces random positions from a Source.
type Distribution[T Scalar] interface {
	Sample(r Source) Pos[T]
}

// Uniform draws each component independently:
// integers over their full range, floats in [0, 1).
type Uniform[T Scalar] struct{}

// Sample implements Distribution.
func (Uniform[T]) Sample(r Source) Pos[T] {
	return Pos[T]{X: uniformElem[T](r), Y: uniformElem[T](r)}
}

// StandardNormal draws each component independently from N(0, 1).
type StandardNormal[T Float] struct{}

// Sample implements Distribution.
func (StandardNormal[T]) Sample(r Source) Pos[T] {
	return normalPos[T](r)
}

// SampleUniform is Uniform[T]{}.Sample(r).
func SampleUniform[T Scalar](r Source) Pos[T] {
	return Uniform[T]{}.Sample(r)
}

// SampleNormal is StandardNormal[T]{}.Sample(r).
func SampleNormal[T Float](r Source) Pos[T] {
	return StandardNormal[T]{}.Sample(r)
}

// Random samples a uniform position from the process-wide source.
// It is safe for concurrent use.
func Random[T Scalar]() Pos[T] {
	return SampleUniform[T](globalSource{})
}

// globalSource forwards to the locked top-level math/rand functions.
type globalSource struct{}

func (globalSource) Uint64() uint64       { return rand.Uint64() }
func (globalSource) Float64() float64     { return rand.Float64() }
func (globalSource) NormFloat64() float64 { return rand.NormFloat64() }

func uniformElem[T Scalar](r Source) T {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float64:
		return T(r.Float64())
	case reflect.Float32:
		// 24 random bits keep the value exact in float32 and below 1.
		return T(float64(r.Uint64()>>40) / (1 << 24))
	}
	// Truncation keeps every bit pattern of narrower integers equally likely.
	return T(r.Uint64())
}

// normalPos draws X then Y from N(0, 1). Callers guarantee T is a float kind.
func normalPos[T Scalar](r Source) Pos[T] {
	return Pos[T]{X: T(r.NormFloat64()), Y: T(r.NormFloat64())}
}

func isFloat[T Scalar]() bool {
	k := reflect.TypeFor[T]().Kind()
	return k == reflect.Float32 || k == reflect.Float64
}
