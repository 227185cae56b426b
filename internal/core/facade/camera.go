// Package facade exposes the engine's global services (camera, input and
// application timing) as small stateless values. Each call is a single
// native round trip.
package facade

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/caveman250/PlumbusEngine/internal/core/marshal"
	"github.com/caveman250/PlumbusEngine/internal/core/native"
)

type Camera struct {
	surface native.Surface
}

func NewCamera(surface native.Surface) Camera {
	return Camera{surface: surface}
}

func (c Camera) ViewMatrix() mgl32.Mat4 {
	return marshal.Mat4FromNative(c.surface.CameraGetViewMatrix())
}

// SetViewMatrix overrides the view until the engine next rebuilds it from
// position and rotation.
func (c Camera) SetViewMatrix(m mgl32.Mat4) {
	c.surface.CameraSetViewMatrix(marshal.Mat4ToNative(m))
}

func (c Camera) ProjectionMatrix() mgl32.Mat4 {
	return marshal.Mat4FromNative(c.surface.CameraGetProjectionMatrix())
}

func (c Camera) SetProjectionMatrix(m mgl32.Mat4) {
	c.surface.CameraSetProjectionMatrix(marshal.Mat4ToNative(m))
}

func (c Camera) Position() mgl32.Vec3 {
	return marshal.Vec3FromNative(c.surface.CameraGetPosition())
}

func (c Camera) SetPosition(v mgl32.Vec3) {
	c.surface.CameraSetPosition(marshal.Vec3ToNative(v))
}

// Rotation is euler angles in degrees.
func (c Camera) Rotation() mgl32.Vec3 {
	return marshal.Vec3FromNative(c.surface.CameraGetRotation())
}

func (c Camera) SetRotation(v mgl32.Vec3) {
	c.surface.CameraSetRotation(marshal.Vec3ToNative(v))
}

// Forward is the camera's look direction taken from the view matrix.
func (c Camera) Forward() mgl32.Vec3 {
	return marshal.Vec3FromNative(c.surface.CameraGetForward())
}
