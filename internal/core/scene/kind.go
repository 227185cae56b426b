package scene

import (
	"fmt"

	"github.com/caveman250/PlumbusEngine/internal/core/native"
)

// Kind is the engine's component type code.
type Kind int32

const (
	KindTransform  = Kind(native.ComponentTranslation)
	KindNone       = Kind(native.ComponentNone)
	KindPointLight = Kind(native.ComponentPointLight)
)

func (k Kind) String() string {
	if d, ok := kinds[k]; ok {
		return d.name
	}
	if k == KindNone {
		return "None"
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

// KindByName resolves a component kind from its name, e.g. "Transform".
func KindByName(name string) (Kind, bool) {
	for k, d := range kinds {
		if d.name == name {
			return k, true
		}
	}
	return KindNone, false
}
