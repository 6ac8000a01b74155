package math3d

import "math"

// Samplers for Vec3. Each rejection loop runs until a candidate is accepted,
// with no iteration cap.

var cubeInterval = Interval{-1, 1}

// RandomVec3 returns a vector with components drawn uniformly from [0, 1).
func RandomVec3(r Rand) Vec3 {
	return RandomVec3Range(r, unitInterval)
}

// RandomVec3Range returns a vector with each component drawn uniformly from iv.
func RandomVec3Range(r Rand, iv Interval) Vec3 {
	return Vec3{iv.Sample(r), iv.Sample(r), iv.Sample(r)}
}

// RandomInUnitSphere returns a point uniformly distributed inside the unit ball.
func RandomInUnitSphere(r Rand) Vec3 {
	for {
		p := RandomVec3Range(r, cubeInterval)
		if p.LenSq() < 1 {
			return p
		}
	}
}

// RandomUnitVec3 returns a direction uniformly distributed on the unit sphere.
func RandomUnitVec3(r Rand) Vec3 {
	for {
		p := RandomVec3Range(r, cubeInterval)
		// Tiny candidates would blow up when divided by their length.
		lenSq := p.LenSq()
		if 1e-160 < lenSq && lenSq <= 1 {
			return p.Div(math.Sqrt(lenSq))
		}
	}
}

// RandomOnHemisphere returns a unit direction on the side of the sphere that
// normal points into.
func RandomOnHemisphere(r Rand, normal Vec3) Vec3 {
	onUnitSphere := RandomUnitVec3(r)
	if onUnitSphere.Dot(normal) > 0 {
		return onUnitSphere
	}
	return onUnitSphere.Negate()
}

// RandomInUnitDisk returns a point uniformly distributed inside the unit disk
// in the XY plane. Z is always 0.
func RandomInUnitDisk(r Rand) Vec3 {
	for {
		p := Vec3{cubeInterval.Sample(r), cubeInterval.Sample(r), 0}
		if p.LenSq() < 1 {
			return p
		}
	}
}
