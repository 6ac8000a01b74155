package math3d

import (
	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// R2 converts v to a gonum r2.Vec.
func (v Vec2) R2() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// Vec2FromR2 converts a gonum r2.Vec to a Vec2.
func Vec2FromR2(v r2.Vec) Vec2 {
	return Vec2{v.X, v.Y}
}

// R3 converts a to a gonum r3.Vec.
func (a Vec3) R3() r3.Vec {
	return r3.Vec{X: a.X, Y: a.Y, Z: a.Z}
}

// Vec3FromR3 converts a gonum r3.Vec to a Vec3.
func Vec3FromR3(v r3.Vec) Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// F32 narrows v to float32. Values outside float32 range become ±Inf.
func (v Vec2) F32() f32.Vec2 {
	return f32.Vec2{float32(v.X), float32(v.Y)}
}

// Vec2FromF32 widens an f32.Vec2.
func Vec2FromF32(v f32.Vec2) Vec2 {
	return Vec2{float64(v[0]), float64(v[1])}
}

// F32 narrows a to float32. Values outside float32 range become ±Inf.
func (a Vec3) F32() f32.Vec3 {
	return f32.Vec3{float32(a.X), float32(a.Y), float32(a.Z)}
}

// Vec3FromF32 widens an f32.Vec3.
func Vec3FromF32(v f32.Vec3) Vec3 {
	return Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// F32 narrows v to float32. Values outside float32 range become ±Inf.
func (v Vec4) F32() f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// Vec4FromF32 widens an f32.Vec4.
func Vec4FromF32(v f32.Vec4) Vec4 {
	return Vec4{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])}
}
