package math3d

import "gonum.org/v1/gonum/floats/scalar"

const epsilon = 1e-10

func almostEqual(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, epsilon)
}

func vec2Equal(a, b Vec2) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func vec3Equal(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func vec4Equal(a, b Vec4) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) &&
		almostEqual(a.Z, b.Z) && almostEqual(a.W, b.W)
}

// countingRand counts how many values a sampler pulled.
type countingRand struct {
	r     Rand
	calls int
}

func (c *countingRand) Float64() float64 {
	c.calls++
	return c.r.Float64()
}

// scriptedRand replays a fixed sequence, wrapping around at the end.
type scriptedRand struct {
	vals []float64
	i    int
}

func (s *scriptedRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}
