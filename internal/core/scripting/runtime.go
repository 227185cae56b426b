package scripting

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/caveman250/PlumbusEngine/internal/core/events/bus"
	"github.com/caveman250/PlumbusEngine/internal/core/facade"
	"github.com/caveman250/PlumbusEngine/internal/core/models"
	"github.com/caveman250/PlumbusEngine/internal/core/native"
	"github.com/caveman250/PlumbusEngine/internal/core/observability/log"
	"github.com/caveman250/PlumbusEngine/internal/core/registry"
	"github.com/caveman250/PlumbusEngine/internal/core/scene"
)

const eventSource = "scripting"

// InstanceID identifies a live script instance. Zero is never issued, so the
// engine can read it as failure.
type InstanceID uint64

type instance struct {
	id          InstanceID
	correlation string
	name        string
	self        models.Handle
	owner       models.Handle
	script      Script
}

// Stats are cumulative runtime counters.
type Stats struct {
	Frames    uint64
	Updates   uint64
	Failures  uint64
	Missing   uint64
	Instances int
	Scripts   int
}

// Runtime owns the script factories and live instances and drives them once
// per frame. Scripts are updated serially in creation order.
type Runtime struct {
	mu        sync.Mutex
	factories map[string]Factory
	instances map[InstanceID]*instance
	order     []InstanceID
	nextID    InstanceID
	stats     Stats

	surface  native.Surface
	registry *registry.Registry
	bus      bus.EventBus
	logger   log.Log
}

func NewRuntime(surface native.Surface, reg *registry.Registry, b bus.EventBus, logger log.Log) *Runtime {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Runtime{
		factories: make(map[string]Factory),
		instances: make(map[InstanceID]*instance),
		nextID:    1,
		surface:   surface,
		registry:  reg,
		bus:       b,
		logger:    logger.With(log.String("component", "scripting")),
	}
}

// scriptName strips directories and extension, so the engine may refer to a
// script by its source file name.
func scriptName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}

// RegisterScript makes a script constructible by name.
func (r *Runtime) RegisterScript(name string, factory Factory) error {
	if factory == nil {
		return ErrNilFactory
	}
	name = scriptName(name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%w: %s", ErrScriptAlreadyRegistered, name)
	}
	r.factories[name] = factory
	return nil
}

// Scripts lists registered script names.
func (r *Runtime) Scripts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.factories))
	for name := range r.factories {
		out = append(out, name)
	}
	return out
}

// RegisterEntity is the engine's push notification for a new entity.
func (r *Runtime) RegisterEntity(handle models.Handle, name string) error {
	return r.registry.Register(handle, name)
}

// CreateScript attaches a new instance of the named script. self is the
// script component's handle, owner the entity it belongs to.
func (r *Runtime) CreateScript(name string, self, owner models.Handle) (InstanceID, error) {
	name = scriptName(name)

	r.mu.Lock()
	factory, ok := r.factories[name]
	r.mu.Unlock()
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrScriptNotRegistered, name)
	}

	correlation := uuid.NewString()
	logger := r.logger.With(
		log.String("script", name),
		log.String("correlation", correlation),
		log.Handle("owner", uint64(owner)),
	)
	script, err := factory(Behaviour{
		Camera:      facade.NewCamera(r.surface),
		Input:       facade.NewInput(r.surface),
		Application: facade.NewApplication(r.surface),
		self:        models.New(self),
		owner:       scene.NewEntity(owner, r.surface),
		registry:    r.registry,
		logger:      logger,
	})
	if err != nil {
		return 0, fmt.Errorf("create script %s: %w", name, err)
	}

	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.instances[id] = &instance{
		id:          id,
		correlation: correlation,
		name:        name,
		self:        self,
		owner:       owner,
		script:      script,
	}
	r.order = append(r.order, id)
	r.mu.Unlock()

	logger.Info("script created", log.Uint64("instance", uint64(id)))
	r.publish(bus.ScriptCreated, bus.ScriptEvent{
		Instance:    uint64(id),
		Correlation: correlation,
		Script:      name,
		Self:        self,
		Owner:       owner,
	})
	return id, nil
}

// DestroyScript removes an instance. It will not be updated again.
func (r *Runtime) DestroyScript(id InstanceID) error {
	r.mu.Lock()
	inst, ok := r.instances[id]
	if ok {
		delete(r.instances, id)
		for i, o := range r.order {
			if o == id {
				r.order = append(r.order[:i:i], r.order[i+1:]...)
				break
			}
		}
	}
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %d", ErrInstanceNotFound, id)
	}
	if d, ok := inst.script.(Destroyer); ok {
		d.Destroy()
	}

	r.logger.Info("script destroyed",
		log.String("script", inst.name),
		log.Uint64("instance", uint64(id)),
		log.String("correlation", inst.correlation),
	)
	r.publish(bus.ScriptDestroyed, bus.ScriptEvent{
		Instance:    uint64(id),
		Correlation: inst.correlation,
		Script:      inst.name,
		Self:        inst.self,
		Owner:       inst.owner,
	})
	return nil
}

// Update runs every live script once. A failing script is logged and counted,
// then the frame moves on; nothing is retried. A missing component is an
// ordinary outcome for scripts and only counts as Missing.
func (r *Runtime) Update(deltaTime float32) {
	r.mu.Lock()
	live := make([]*instance, 0, len(r.order))
	for _, id := range r.order {
		live = append(live, r.instances[id])
	}
	r.stats.Frames++
	frame := r.stats.Frames
	r.mu.Unlock()

	var updates, failures, missing uint64
	for _, inst := range live {
		updates++
		err := inst.script.Update(deltaTime)
		switch {
		case err == nil:
		case errors.Is(err, scene.ErrComponentNotFound):
			missing++
			r.logger.Debug("script skipped missing component",
				log.String("script", inst.name),
				log.Uint64("instance", uint64(inst.id)),
				log.Error(err),
			)
		default:
			failures++
			r.logger.Error("script update failed",
				log.String("script", inst.name),
				log.Uint64("instance", uint64(inst.id)),
				log.String("correlation", inst.correlation),
				log.Error(err),
			)
			r.publish(bus.ScriptFailed, bus.ScriptEvent{
				Instance:    uint64(inst.id),
				Correlation: inst.correlation,
				Script:      inst.name,
				Self:        inst.self,
				Owner:       inst.owner,
				Err:         err,
			})
		}
	}

	r.mu.Lock()
	r.stats.Updates += updates
	r.stats.Failures += failures
	r.stats.Missing += missing
	r.mu.Unlock()

	r.publish(bus.FrameCompleted, bus.FrameEvent{
		Frame:     frame,
		DeltaTime: deltaTime,
		Scripts:   len(live),
		Failures:  int(failures),
	})
}

func (r *Runtime) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.stats
	s.Instances = len(r.instances)
	s.Scripts = len(r.factories)
	return s
}

func (r *Runtime) Registry() *registry.Registry {
	return r.registry
}

func (r *Runtime) publish(eventType string, data any) {
	if r.bus == nil {
		return
	}
	if err := r.bus.Publish(bus.NewEvent(eventType, eventSource, data)); err != nil {
		r.logger.Warn("script event handler failed", log.String("event", eventType), log.Error(err))
	}
}
