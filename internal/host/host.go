// Package host wires the binding layer to an engine: either the in-process
// simulation or a native library loaded at runtime.
package host

import (
	"fmt"

	"github.com/caveman250/PlumbusEngine/internal/config"
	"github.com/caveman250/PlumbusEngine/internal/core/events/bus"
	"github.com/caveman250/PlumbusEngine/internal/core/facade"
	"github.com/caveman250/PlumbusEngine/internal/core/models"
	"github.com/caveman250/PlumbusEngine/internal/core/native"
	"github.com/caveman250/PlumbusEngine/internal/core/native/sim"
	"github.com/caveman250/PlumbusEngine/internal/core/observability/log"
	"github.com/caveman250/PlumbusEngine/internal/core/registry"
	"github.com/caveman250/PlumbusEngine/internal/core/scripting"
	"github.com/caveman250/PlumbusEngine/internal/core/scripting/scripts"
)

type Host struct {
	cfg     *config.Config
	surface native.Surface
	app     facade.Application

	registry *registry.Registry
	runtime  *scripting.Runtime
	bus      bus.EventBus
	logger   log.Log
	subs     []bus.Subscription

	// simulated hosts
	engine *sim.Engine

	// native hosts
	lib       *native.Library
	table     *native.Table
	callbacks *native.HostCallbacks
}

func newHost(cfg *config.Config, surface native.Surface, logger log.Log, b bus.EventBus) (*Host, error) {
	if logger == nil {
		logger = log.NewNop()
	}
	if b == nil {
		b = bus.New()
	}

	reg := registry.New(registry.WithBus(b), registry.WithLogger(logger))
	rt := scripting.NewRuntime(surface, reg, b, logger)
	if err := scripts.Register(rt); err != nil {
		return nil, err
	}

	h := &Host{
		cfg:      cfg,
		surface:  surface,
		app:      facade.NewApplication(surface),
		registry: reg,
		runtime:  rt,
		bus:      b,
		logger:   logger.With(log.String("component", "host")),
	}

	sub, err := b.Subscribe(bus.EntityRegistered, func(e bus.Event) error {
		ev, ok := e.Data().(bus.EntityEvent)
		if !ok {
			return fmt.Errorf("%w: %s carries %T", bus.ErrUnexpectedData, e.Type(), e.Data())
		}
		h.logger.Info("entity available", log.String("name", ev.Name), log.Handle("handle", uint64(ev.Handle)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	h.subs = append(h.subs, sub)

	return h, nil
}

func (h *Host) Surface() native.Surface { return h.surface }

func (h *Host) Registry() *registry.Registry { return h.registry }

func (h *Host) Runtime() *scripting.Runtime { return h.runtime }

func (h *Host) Bus() bus.EventBus { return h.bus }

// Engine is the simulated engine, or nil for native hosts.
func (h *Host) Engine() *sim.Engine { return h.engine }

// Table is the bound symbol table, or nil for simulated hosts.
func (h *Host) Table() *native.Table { return h.table }

// Close drops bus subscriptions and unloads the engine library, if any.
func (h *Host) Close() error {
	for _, s := range h.subs {
		_ = h.bus.Unsubscribe(s)
	}
	h.subs = nil
	if h.lib != nil {
		err := h.lib.Close()
		h.lib = nil
		return err
	}
	return nil
}

// The handlers below are what the engine's push callbacks land in.

func (h *Host) onRegisterEntity(handle uint64, name string) {
	if err := h.runtime.RegisterEntity(models.Handle(handle), name); err != nil {
		h.logger.Warn("entity registration rejected", log.String("name", name), log.Error(err))
	}
}

// onCreateScript returns 0 when the script could not be created.
func (h *Host) onCreateScript(name string, self, owner uint64) uint64 {
	id, err := h.runtime.CreateScript(name, models.Handle(self), models.Handle(owner))
	if err != nil {
		h.logger.Error("script creation failed", log.String("script", name), log.Error(err))
		return 0
	}
	return uint64(id)
}

func (h *Host) onDestroyScript(instance uint64) {
	if err := h.runtime.DestroyScript(scripting.InstanceID(instance)); err != nil {
		h.logger.Warn("script destroy failed", log.Uint64("instance", instance), log.Error(err))
	}
}

func (h *Host) onUpdate(deltaTime float64) {
	h.runtime.Update(float32(deltaTime))
}
