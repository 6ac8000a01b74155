package math3d

import "math"

// Vec4 represents a 4D vector (or homogeneous 3D point, or RGBA color).
type Vec4 struct {
	X, Y, Z, W float64
}

// Point4 is a Vec4 used as a homogeneous position.
type Point4 = Vec4

// ColorRGBA is a Vec4 holding linear red, green, blue and alpha.
type ColorRGBA = Vec4

// V4 creates a new Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// Splat4 returns a Vec4 with every component set to v.
func Splat4(v float64) Vec4 {
	return Vec4{v, v, v, v}
}

// Zero4 returns the zero vector.
func Zero4() Vec4 { return Vec4{} }

// Up4 returns (0, 1, 0, 0).
func Up4() Vec4 { return Vec4{0, 1, 0, 0} }

// Down4 returns (0, -1, 0, 0).
func Down4() Vec4 { return Vec4{0, -1, 0, 0} }

// Left4 returns (-1, 0, 0, 0).
func Left4() Vec4 { return Vec4{-1, 0, 0, 0} }

// Right4 returns (1, 0, 0, 0).
func Right4() Vec4 { return Vec4{1, 0, 0, 0} }

// Forward4 returns (0, 0, 1, 0).
func Forward4() Vec4 { return Vec4{0, 0, 1, 0} }

// Backward4 returns (0, 0, -1, 0).
func Backward4() Vec4 { return Vec4{0, 0, -1, 0} }

// Truncate returns the Vec3 portion (ignoring W).
func (v Vec4) Truncate() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Add returns the vector sum.
//
//nolint:st1016 // a+b naming convention is clearer for vector operations
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the vector difference.
//
//nolint:st1016 // a-b naming convention is clearer for vector operations
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Mul returns the component-wise product.
//
//nolint:st1016 // a*b naming convention is clearer for vector operations
func (a Vec4) Mul(b Vec4) Vec4 {
	return Vec4{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W}
}

// DivVec returns the component-wise quotient.
//
//nolint:st1016 // a/b naming convention is clearer for vector operations
func (a Vec4) DivVec(b Vec4) Vec4 {
	return Vec4{a.X / b.X, a.Y / b.Y, a.Z / b.Z, a.W / b.W}
}

// Scale returns the scalar product.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns the scalar division.
func (v Vec4) Div(s float64) Vec4 {
	return Vec4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Negate returns the negated vector.
func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// AddAssign sets v to v + b.
func (v *Vec4) AddAssign(b Vec4) { *v = v.Add(b) }

// SubAssign sets v to v - b.
func (v *Vec4) SubAssign(b Vec4) { *v = v.Sub(b) }

// MulAssign sets v to the component-wise product v * b.
func (v *Vec4) MulAssign(b Vec4) { *v = v.Mul(b) }

// DivVecAssign sets v to the component-wise quotient v / b.
func (v *Vec4) DivVecAssign(b Vec4) { *v = v.DivVec(b) }

// ScaleAssign sets v to v * s.
func (v *Vec4) ScaleAssign(s float64) { *v = v.Scale(s) }

// DivAssign sets v to v / s.
func (v *Vec4) DivAssign(s float64) { *v = v.Div(s) }

// Dot returns the dot product.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a Vec4) Dot(b Vec4) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Len returns the length.
func (v Vec4) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// LenSq returns the squared length.
func (v Vec4) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Normalize returns the unit vector. A zero vector yields NaN.
func (v Vec4) Normalize() Vec4 {
	return v.Div(v.Len())
}

// ToGamma encodes every channel, alpha included, with LinearToGamma.
func (v Vec4) ToGamma() ColorRGBA {
	return ColorRGBA{
		LinearToGamma(v.X),
		LinearToGamma(v.Y),
		LinearToGamma(v.Z),
		LinearToGamma(v.W),
	}
}

// NearZero reports whether every component is within 1e-8 of zero.
func (v Vec4) NearZero() bool {
	const s = 1e-8
	return math.Abs(v.X) < s && math.Abs(v.Y) < s && math.Abs(v.Z) < s && math.Abs(v.W) < s
}

// RandomVec4 returns a vector with components drawn uniformly from [0, 1).
func RandomVec4(r Rand) Vec4 {
	return RandomVec4Range(r, unitInterval)
}

// RandomVec4Range returns a vector with each component drawn uniformly from iv.
func RandomVec4Range(r Rand, iv Interval) Vec4 {
	return Vec4{iv.Sample(r), iv.Sample(r), iv.Sample(r), iv.Sample(r)}
}

// RandomUnitVec4 returns RandomVec4(r).Normalize().
//
// Like RandomUnitVec2 this normalizes a point from the positive unit cube, so
// directions are not uniform on the hypersphere. There is no rejection variant.
func RandomUnitVec4(r Rand) Vec4 {
	return RandomVec4(r).Normalize()
}
