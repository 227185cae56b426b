package bus

import (
	"github.com/caveman250/PlumbusEngine/internal/core/models"
)

// Event types published by the registry and the script runtime.
const (
	EntityRegistered   = "entity.registered"
	EntityUnregistered = "entity.unregistered"
	RegistryCleared    = "registry.cleared"

	ScriptCreated   = "script.created"
	ScriptDestroyed = "script.destroyed"
	ScriptFailed    = "script.failed"

	FrameCompleted = "frame.completed"
)

// EntityEvent is the payload of entity events.
type EntityEvent struct {
	Handle models.Handle
	Name   string
}

// ScriptEvent is the payload of script events. Err is set for ScriptFailed.
type ScriptEvent struct {
	Instance    uint64
	Correlation string
	Script      string
	Self        models.Handle
	Owner       models.Handle
	Err         error
}

// FrameEvent is the payload of FrameCompleted.
type FrameEvent struct {
	Frame     uint64
	DeltaTime float32
	Scripts   int
	Failures  int
}
