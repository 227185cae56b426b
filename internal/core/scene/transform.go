package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/caveman250/PlumbusEngine/internal/core/marshal"
)

// Transform is an entity's translation, rotation (euler degrees) and scale.
// Every accessor is a native call; nothing is cached.
type Transform struct {
	Base
}

func (Transform) Kind() Kind { return KindTransform }

func (t Transform) Translation() mgl32.Vec3 {
	return marshal.Vec3FromNative(t.surface.TransformGetTranslation(t.Handle()))
}

func (t Transform) SetTranslation(v mgl32.Vec3) {
	t.surface.TransformSetTranslation(t.Handle(), marshal.Vec3ToNative(v))
}

func (t Transform) Rotation() mgl32.Vec3 {
	return marshal.Vec3FromNative(t.surface.TransformGetRotation(t.Handle()))
}

func (t Transform) SetRotation(v mgl32.Vec3) {
	t.surface.TransformSetRotation(t.Handle(), marshal.Vec3ToNative(v))
}

func (t Transform) Scale() mgl32.Vec3 {
	return marshal.Vec3FromNative(t.surface.TransformGetScale(t.Handle()))
}

func (t Transform) SetScale(v mgl32.Vec3) {
	t.surface.TransformSetScale(t.Handle(), marshal.Vec3ToNative(v))
}

// Translate adds delta to the translation.
func (t Transform) Translate(delta mgl32.Vec3) {
	t.surface.TransformTranslate(t.Handle(), marshal.Vec3ToNative(delta))
}

// Rotate adds delta to the rotation.
func (t Transform) Rotate(delta mgl32.Vec3) {
	t.surface.TransformRotate(t.Handle(), marshal.Vec3ToNative(delta))
}

// ScaleBy adds delta to the scale.
func (t Transform) ScaleBy(delta mgl32.Vec3) {
	t.surface.TransformScale(t.Handle(), marshal.Vec3ToNative(delta))
}
