package scene

import (
	"fmt"

	"github.com/caveman250/PlumbusEngine/internal/core/models"
	"github.com/caveman250/PlumbusEngine/internal/core/native"
)

// Entity is an engine game object. It is a handle plus the surface used to
// reach the engine; copying it is cheap and two entities with the same handle
// refer to the same engine object.
type Entity struct {
	models.Object
	surface native.Surface
}

func NewEntity(handle models.Handle, surface native.Surface) Entity {
	return Entity{Object: models.New(handle), surface: surface}
}

func (e Entity) Surface() native.Surface {
	return e.surface
}

// Equal compares entities by handle.
func (e Entity) Equal(other Entity) bool {
	return e.Object.Equal(other.Object)
}

// Valid asks the engine whether the entity still exists.
func (e Entity) Valid() bool {
	return !e.IsNull() && e.surface.IsValidHandle(e.Handle())
}

func (e Entity) String() string {
	return fmt.Sprintf("entity(%s)", e.Handle())
}

// Component is implemented by every typed component wrapper. Kind must be
// answerable from the zero value: the typed lookup reads it before any
// component exists.
type Component interface {
	Kind() Kind
	Handle() models.Handle
	Owner() Entity
	Equal(other Component) bool
	Validate() error
}

// Base holds what every component shares: its own handle, the owning entity
// and the surface calls go through. Wrappers built through different entities
// or surfaces differ under ==; identity is Equal.
type Base struct {
	models.Object
	owner   models.Handle
	surface native.Surface
}

func newBase(handle models.Handle, owner Entity) Base {
	return Base{Object: models.New(handle), owner: owner.Handle(), surface: owner.surface}
}

func (b Base) Owner() Entity {
	return NewEntity(b.owner, b.surface)
}

// Equal reports whether other wraps the same component handle.
func (b Base) Equal(other Component) bool {
	return other != nil && b.Handle() == other.Handle()
}

// Validate returns ErrStaleHandle if the engine no longer knows the
// component. Engines without a validity probe always pass; holding
// components across frames is then the caller's risk.
func (b Base) Validate() error {
	if b.IsNull() || !b.surface.IsValidHandle(b.Handle()) {
		return fmt.Errorf("component %s: %w", b.Handle(), ErrStaleHandle)
	}
	return nil
}
