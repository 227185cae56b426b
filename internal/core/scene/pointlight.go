package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/caveman250/PlumbusEngine/internal/core/marshal"
)

type PointLight struct {
	Base
}

func (PointLight) Kind() Kind { return KindPointLight }

func (l PointLight) Colour() mgl32.Vec3 {
	return marshal.Vec3FromNative(l.surface.PointLightGetColour(l.Handle()))
}

func (l PointLight) SetColour(c mgl32.Vec3) {
	l.surface.PointLightSetColour(l.Handle(), marshal.Vec3ToNative(c))
}

func (l PointLight) Radius() float32 {
	return l.surface.PointLightGetRadius(l.Handle())
}

func (l PointLight) SetRadius(r float32) {
	l.surface.PointLightSetRadius(l.Handle(), r)
}
