package scene

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/caveman250/PlumbusEngine/internal/core/models"
)

type descriptor struct {
	name string
	wrap func(b Base) Component
}

// kinds binds each supported kind code to its name and constructor. It is the
// only place the two are paired.
var kinds = map[Kind]descriptor{
	KindTransform: {
		name: "Transform",
		wrap: func(b Base) Component { return Transform{Base: b} },
	},
	KindPointLight: {
		name: "PointLight",
		wrap: func(b Base) Component { return PointLight{Base: b} },
	},
}

// Kinds lists the supported component kinds in code order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Get returns the entity's component of type T.
//
// The kind is read from T itself; a T whose kind is not in the table fails
// with ErrUnsupportedComponentKind without calling into the engine. A
// sentinel handle from the engine yields ErrComponentNotFound.
func Get[T Component](e Entity) (T, error) {
	var zero T
	if !concrete(zero) {
		return zero, newLookupError(e.Handle(), KindNone, ErrUnsupportedComponentKind)
	}

	c, err := lookup(e, zero.Kind())
	if err != nil {
		return zero, err
	}

	t, ok := c.(T)
	if !ok {
		panic(fmt.Sprintf("scene: kind %s constructs %T, not %T", zero.Kind(), c, zero))
	}
	return t, nil
}

// GetByName is Get for callers that only know the kind by name, such as
// config-driven setup.
func GetByName(e Entity, name string) (Component, error) {
	k, ok := KindByName(name)
	if !ok {
		return nil, newLookupError(e.Handle(), KindNone, fmt.Errorf("%w: %q", ErrUnsupportedComponentKind, name))
	}
	return lookup(e, k)
}

// concrete reports whether v can answer Kind(): interface types and nil
// pointers cannot.
func concrete(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return false
	}
	return rv.Kind() != reflect.Pointer || !rv.IsNil()
}

func lookup(e Entity, k Kind) (Component, error) {
	d, ok := kinds[k]
	if !ok {
		return nil, newLookupError(e.Handle(), k, ErrUnsupportedComponentKind)
	}

	h := e.surface.GetComponent(e.Handle(), int32(k))
	if h == models.NullHandle {
		return nil, newLookupError(e.Handle(), k, ErrComponentNotFound)
	}
	return d.wrap(newBase(h, e)), nil
}
