package math3d

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Lerp blends a and b by fac as (1-fac)*b + fac*a.
//
// Note the order: fac=0 yields b and fac=1 yields a.
func Lerp[F constraints.Float](a, b, fac F) F {
	return (1-fac)*b + fac*a
}

// LinearToGamma encodes a linear light value with gamma 2.
// Zero and negative values map to 0.
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// GammaToLinear decodes a gamma 2 value back to linear light, clamped to [0, 1].
// NaN stays NaN.
func GammaToLinear(gamma float64) float64 {
	return math.Min(math.Max(gamma*gamma, 0), 1)
}
