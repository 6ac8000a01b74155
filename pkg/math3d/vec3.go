// Package math3d provides the vector kernel for the pmath path tracer.
package math3d

import "math"

// Vec3 represents a 3D vector, point, or linear RGB color.
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is a Vec3 used as a position.
type Point3 = Vec3

// ColorRGB is a Vec3 holding linear red, green and blue in X, Y and Z.
type ColorRGB = Vec3

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Splat3 returns a Vec3 with every component set to v.
func Splat3(v float64) Vec3 {
	return Vec3{v, v, v}
}

// FromRGB creates a color from 8-bit channels, mapping 0..255 to 0..1.
func FromRGB(r, g, b uint8) ColorRGB {
	const colorScale = 1.0 / 255.0
	return ColorRGB{
		float64(r) * colorScale,
		float64(g) * colorScale,
		float64(b) * colorScale,
	}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 { return Vec3{} }

// Up3 returns the world up vector (0, 1, 0).
func Up3() Vec3 { return Vec3{0, 1, 0} }

// Down3 returns (0, -1, 0).
func Down3() Vec3 { return Vec3{0, -1, 0} }

// Left3 returns (-1, 0, 0).
func Left3() Vec3 { return Vec3{-1, 0, 0} }

// Right3 returns the world right vector (1, 0, 0).
func Right3() Vec3 { return Vec3{1, 0, 0} }

// Forward3 returns the world forward vector (0, 0, 1).
func Forward3() Vec3 { return Vec3{0, 0, 1} }

// Backward3 returns (0, 0, -1).
func Backward3() Vec3 { return Vec3{0, 0, -1} }

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// DivVec returns the component-wise quotient a / b.
func (a Vec3) DivVec(b Vec3) Vec3 {
	return Vec3{a.X / b.X, a.Y / b.Y, a.Z / b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Div returns the scalar division a / s.
func (a Vec3) Div(s float64) Vec3 {
	return Vec3{a.X / s, a.Y / s, a.Z / s}
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// AddAssign sets a to a + b.
func (a *Vec3) AddAssign(b Vec3) { *a = a.Add(b) }

// SubAssign sets a to a - b.
func (a *Vec3) SubAssign(b Vec3) { *a = a.Sub(b) }

// MulAssign sets a to the component-wise product a * b.
func (a *Vec3) MulAssign(b Vec3) { *a = a.Mul(b) }

// DivVecAssign sets a to the component-wise quotient a / b.
func (a *Vec3) DivVecAssign(b Vec3) { *a = a.DivVec(b) }

// ScaleAssign sets a to a * s.
func (a *Vec3) ScaleAssign(s float64) { *a = a.Scale(s) }

// DivAssign sets a to a / s.
func (a *Vec3) DivAssign(s float64) { *a = a.Div(s) }

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.LenSq())
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec3) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Normalize returns a / a.Len().
// There is no zero check: a zero vector comes back as NaN.
func (a Vec3) Normalize() Vec3 {
	return a.Div(a.Len())
}

// Lerp blends a and b by t as (1-t)*b + t*a, so t=0 yields b.
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return b.Scale(1 - t).Add(a.Scale(t))
}

// Distance returns the distance between two points.
func (a Vec3) Distance(b Vec3) float64 {
	return a.Sub(b).Len()
}

// Truncate drops Z.
func (a Vec3) Truncate() Vec2 {
	return Vec2{a.X, a.Y}
}

// Extend returns a Vec4 with w appended.
func (a Vec3) Extend(w float64) Vec4 {
	return Vec4{a.X, a.Y, a.Z, w}
}

// Reflect returns the reflection of a around normal n.
// n should be unit length.
func (a Vec3) Reflect(n Vec3) Vec3 {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// Refract bends a through a surface with normal n by Snell's law.
// etaRatio is the incident index over the transmitted index.
//
// a must already be normalized. Total internal reflection is not detected;
// the radicand is taken in absolute value so round-off never produces NaN.
func (a Vec3) Refract(n Vec3, etaRatio float64) Vec3 {
	cosTheta := math.Min(a.Negate().Dot(n), 1.0)
	rOutPerp := a.Add(n.Scale(cosTheta)).Scale(etaRatio)
	rOutParallel := n.Scale(-math.Sqrt(math.Abs(1.0 - rOutPerp.LenSq())))
	return rOutPerp.Add(rOutParallel)
}

// ToGamma encodes a linear color for display, channel by channel.
func (a Vec3) ToGamma() ColorRGB {
	return ColorRGB{
		LinearToGamma(a.X),
		LinearToGamma(a.Y),
		LinearToGamma(a.Z),
	}
}

// NearZero reports whether every component is within 1e-8 of zero.
func (a Vec3) NearZero() bool {
	const s = 1e-8
	return math.Abs(a.X) < s && math.Abs(a.Y) < s && math.Abs(a.Z) < s
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{
		math.Min(a.X, b.X),
		math.Min(a.Y, b.Y),
		math.Min(a.Z, b.Z),
	}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{
		math.Max(a.X, b.X),
		math.Max(a.Y, b.Y),
		math.Max(a.Z, b.Z),
	}
}

// Abs returns the component-wise absolute value.
func (a Vec3) Abs() Vec3 {
	return Vec3{
		math.Abs(a.X),
		math.Abs(a.Y),
		math.Abs(a.Z),
	}
}
