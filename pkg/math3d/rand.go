package math3d

import "math/rand/v2"

// Rand is the source every sampler in this package draws from.
// Float64 must return a value in [0, 1).
//
// *rand.Rand from both math/rand and math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a PCG generator seeded with seed, for reproducible sampling.
// The returned generator is not safe for concurrent use.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// DefaultRand returns a Rand backed by the math/rand/v2 top-level source.
// It is randomly seeded and safe for concurrent use.
func DefaultRand() Rand {
	return globalRand{}
}
