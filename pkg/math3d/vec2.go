package math3d

import "math"

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Point2 is a Vec2 used as a position.
type Point2 = Vec2

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Splat2 returns a Vec2 with both components set to v.
func Splat2(v float64) Vec2 {
	return Vec2{v, v}
}

// Up2 returns (0, 1).
func Up2() Vec2 { return Vec2{0, 1} }

// Down2 returns (0, -1).
func Down2() Vec2 { return Vec2{0, -1} }

// Left2 returns (-1, 0).
func Left2() Vec2 { return Vec2{-1, 0} }

// Right2 returns (1, 0).
func Right2() Vec2 { return Vec2{1, 0} }

// Zero2 returns the zero vector.
func Zero2() Vec2 { return Vec2{} }

// Add returns the vector sum a + b.
//
//nolint:st1016 // a+b naming convention is clearer for vector operations
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
//
//nolint:st1016 // a-b naming convention is clearer for vector operations
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Mul returns the component-wise product a * b.
//
//nolint:st1016 // a*b naming convention is clearer for vector operations
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// DivVec returns the component-wise quotient a / b.
//
//nolint:st1016 // a/b naming convention is clearer for vector operations
func (a Vec2) DivVec(b Vec2) Vec2 {
	return Vec2{a.X / b.X, a.Y / b.Y}
}

// Scale returns the scalar product v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns the scalar division v / s.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

// Negate returns the negated vector.
func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// AddAssign sets v to v + b.
func (v *Vec2) AddAssign(b Vec2) { *v = v.Add(b) }

// SubAssign sets v to v - b.
func (v *Vec2) SubAssign(b Vec2) { *v = v.Sub(b) }

// MulAssign sets v to the component-wise product v * b.
func (v *Vec2) MulAssign(b Vec2) { *v = v.Mul(b) }

// DivVecAssign sets v to the component-wise quotient v / b.
func (v *Vec2) DivVecAssign(b Vec2) { *v = v.DivVec(b) }

// ScaleAssign sets v to v * s.
func (v *Vec2) ScaleAssign(s float64) { *v = v.Scale(s) }

// DivAssign sets v to v / s.
func (v *Vec2) DivAssign(s float64) { *v = v.Div(s) }

// Dot returns the dot product a · b.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Len returns the length (magnitude) of the vector.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// LenSq returns the squared length (faster, no sqrt).
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns v / v.Len(). A zero vector yields NaN components.
func (v Vec2) Normalize() Vec2 {
	return v.Div(v.Len())
}

// Extend returns a Vec3 with z appended.
func (v Vec2) Extend(z float64) Vec3 {
	return Vec3{v.X, v.Y, z}
}

// NearZero reports whether both components are within 1e-8 of zero.
func (v Vec2) NearZero() bool {
	const s = 1e-8
	return math.Abs(v.X) < s && math.Abs(v.Y) < s
}

// RandomVec2 returns a vector with components drawn uniformly from [0, 1).
func RandomVec2(r Rand) Vec2 {
	return RandomVec2Range(r, unitInterval)
}

// RandomVec2Range returns a vector with each component drawn uniformly from iv.
func RandomVec2Range(r Rand, iv Interval) Vec2 {
	return Vec2{iv.Sample(r), iv.Sample(r)}
}

// RandomUnitVec2 returns RandomVec2(r).Normalize().
//
// The result has unit length but is not uniform on the circle: directions
// are confined to the first quadrant and biased toward its diagonal, unlike
// the rejection sampler behind RandomUnitVec3.
func RandomUnitVec2(r Rand) Vec2 {
	return RandomVec2(r).Normalize()
}
