package scripts

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/caveman250/PlumbusEngine/internal/core/scene"
	"github.com/caveman250/PlumbusEngine/internal/core/scripting"
)

// Orbit circles the camera around its entity at a fixed radius and height,
// advancing Speed degrees per second.
type Orbit struct {
	Radius float32
	Height float32
	Speed  float32

	angle float32
	b     scripting.Behaviour
}

func NewOrbit(b scripting.Behaviour) (scripting.Script, error) {
	return &Orbit{Radius: 35, Height: 11, Speed: 15, b: b}, nil
}

func (o *Orbit) Update(deltaTime float32) error {
	tr, err := scene.Get[scene.Transform](o.b.GameObject())
	if err != nil {
		return err
	}

	o.angle = float32(math.Mod(float64(o.angle+o.Speed*deltaTime), 360))
	rad := mgl32.DegToRad(o.angle)
	offset := mgl32.Vec3{
		o.Radius * float32(math.Sin(float64(rad))),
		o.Height,
		o.Radius * float32(math.Cos(float64(rad))),
	}

	o.b.Camera.SetPosition(tr.Translation().Add(offset))
	o.b.Camera.SetRotation(mgl32.Vec3{-15, o.angle, 0})
	return nil
}

// Angle is the current orbit angle in degrees.
func (o *Orbit) Angle() float32 {
	return o.angle
}
