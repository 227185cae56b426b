package scripts

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/caveman250/PlumbusEngine/internal/core/facade"
	"github.com/caveman250/PlumbusEngine/internal/core/scene"
	"github.com/caveman250/PlumbusEngine/internal/core/scripting"
)

// Rotator spins its entity while a key is held.
type Rotator struct {
	Key  facade.KeyCode
	Step mgl32.Vec3

	b scripting.Behaviour
}

func NewRotator(b scripting.Behaviour) (scripting.Script, error) {
	return &Rotator{
		Key:  facade.KeyOne,
		Step: mgl32.Vec3{0, 0.001, 0},
		b:    b,
	}, nil
}

func (r *Rotator) Update(float32) error {
	if !r.b.Input.IsKeyDown(r.Key) {
		return nil
	}
	tr, err := scene.Get[scene.Transform](r.b.GameObject())
	if err != nil {
		return err
	}
	tr.Rotate(r.Step)
	return nil
}
