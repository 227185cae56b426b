package scripting

import (
	"github.com/caveman250/PlumbusEngine/internal/core/facade"
	"github.com/caveman250/PlumbusEngine/internal/core/models"
	"github.com/caveman250/PlumbusEngine/internal/core/observability/log"
	"github.com/caveman250/PlumbusEngine/internal/core/registry"
	"github.com/caveman250/PlumbusEngine/internal/core/scene"
)

// Script is a gameplay behaviour attached to an entity. Update runs once per
// engine frame.
type Script interface {
	Update(deltaTime float32) error
}

// Destroyer is implemented by scripts that need to release something when
// their instance is destroyed.
type Destroyer interface {
	Destroy()
}

// Factory builds a script instance for one attachment.
type Factory func(b Behaviour) (Script, error)

// Behaviour is what a script instance is built with: its own script
// component, the entity it is attached to and the engine's global services.
type Behaviour struct {
	Camera      facade.Camera
	Input       facade.Input
	Application facade.Application

	self     models.Object
	owner    scene.Entity
	registry *registry.Registry
	logger   log.Log
}

// Self is the script component's own engine object.
func (b Behaviour) Self() models.Object {
	return b.self
}

// GameObject is the entity the script is attached to.
func (b Behaviour) GameObject() scene.Entity {
	return b.owner
}

// FindGameObject returns the most recently registered entity with the name.
func (b Behaviour) FindGameObject(name string) (scene.Entity, bool) {
	e, ok := b.registry.Find(name)
	if !ok {
		return scene.Entity{}, false
	}
	return scene.NewEntity(e.Handle, b.owner.Surface()), true
}

func (b Behaviour) Logger() log.Log {
	return b.logger
}
