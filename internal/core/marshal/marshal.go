// Package marshal converts engine value structs to and from the mgl32 types
// scripts work with. Every conversion is a plain field copy: no allocation, no
// validation, NaN and Inf pass through untouched.
package marshal

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/caveman250/PlumbusEngine/internal/core/native"
)

func Vec2ToNative(v mgl32.Vec2) native.Vec2 {
	return native.Vec2{X: v[0], Y: v[1]}
}

func Vec2FromNative(v native.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{v.X, v.Y}
}

func Vec3ToNative(v mgl32.Vec3) native.Vec3 {
	return native.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func Vec3FromNative(v native.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Mat4ToNative copies a column-major mgl32 matrix into the engine layout, where
// Xi holds column i's x component.
func Mat4ToNative(m mgl32.Mat4) native.Mat4 {
	return native.Mat4{
		X0: m[0], X1: m[4], X2: m[8], X3: m[12],
		Y0: m[1], Y1: m[5], Y2: m[9], Y3: m[13],
		Z0: m[2], Z1: m[6], Z2: m[10], Z3: m[14],
		W0: m[3], W1: m[7], W2: m[11], W3: m[15],
	}
}

func Mat4FromNative(m native.Mat4) mgl32.Mat4 {
	return mgl32.Mat4{
		m.X0, m.Y0, m.Z0, m.W0,
		m.X1, m.Y1, m.Z1, m.W1,
		m.X2, m.Y2, m.Z2, m.W2,
		m.X3, m.Y3, m.Z3, m.W3,
	}
}
