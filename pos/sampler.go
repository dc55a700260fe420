package pos

import "math/rand"

// Strategy selects the Distribution a Sampler draws from.
//
//   - UniformStrategy — Uniform[T]; valid for every element type.
//   - NormalStrategy  — standard normal per component; float element types only.
type Strategy int

const (
	// UniformStrategy draws from Uniform[T].
	UniformStrategy Strategy = iota

	// NormalStrategy draws from the standard normal distribution.
	NormalStrategy
)

// String returns the flag spelling of s.
func (s Strategy) String() string {
	switch s {
	case UniformStrategy:
		return "uniform"
	case NormalStrategy:
		return "normal"
	default:
		return "unknown"
	}
}

// SampleOptions configures a Sampler.
//
// Fields:
//   - Seed     — RNG seed; 0 selects the fixed default seed (see NewRand).
//   - Strategy — which distribution to draw from.
type SampleOptions struct {
	Seed     int64
	Strategy Strategy
}

// DefaultSampleOptions returns seed 0 (deterministic default) and UniformStrategy.
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{Seed: 0, Strategy: UniformStrategy}
}

// Sampler is a seeded stream of positions. It is not safe for concurrent use.
type Sampler[T Scalar] struct {
	rng  *rand.Rand
	dist Distribution[T]
}

// NewSampler validates opts and builds a Sampler.
//
// Errors:
//   - ErrBadStrategy        — opts.Strategy is not a known value.
//   - ErrUnsupportedElement — NormalStrategy with an integer element type.
func NewSampler[T Scalar](opts SampleOptions) (*Sampler[T], error) {
	var dist Distribution[T]
	switch opts.Strategy {
	case UniformStrategy:
		dist = Uniform[T]{}
	case NormalStrategy:
		if !isFloat[T]() {
			return nil, ErrUnsupportedElement
		}
		dist = normalAny[T]{}
	default:
		return nil, ErrBadStrategy
	}
	return &Sampler[T]{rng: NewRand(opts.Seed), dist: dist}, nil
}

// Next draws one position.
func (s *Sampler[T]) Next() Pos[T] {
	return s.dist.Sample(s.rng)
}

// Take draws n positions. n <= 0 yields an empty slice.
func (s *Sampler[T]) Take(n int) []Pos[T] {
	if n <= 0 {
		return []Pos[T]{}
	}
	out := make([]Pos[T], n)
	for i := range out {
		out[i] = s.Next()
	}
	return out
}

// normalAny is StandardNormal for a T only known to be Scalar; NewSampler
// checks the kind before using it.
type normalAny[T Scalar] struct{}

func (normalAny[T]) Sample(r Source) Pos[T] {
	return normalPos[T](r)
}
