package host

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/caveman250/PlumbusEngine/internal/config"
	"github.com/caveman250/PlumbusEngine/internal/core/events/bus"
	"github.com/caveman250/PlumbusEngine/internal/core/native"
	"github.com/caveman250/PlumbusEngine/internal/core/native/sim"
	"github.com/caveman250/PlumbusEngine/internal/core/observability/log"
	"github.com/caveman250/PlumbusEngine/internal/core/scene"
	"github.com/caveman250/PlumbusEngine/internal/core/scripting"
)

// Report summarises a simulation run.
type Report struct {
	Frames   uint64
	Duration time.Duration
	Stats    scripting.Stats
}

func vec3(v [3]float32) native.Vec3 {
	return native.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// NewSimulated builds a host around a simulated engine populated from the
// configured entities. Entities are announced and their scripts created the
// same way the native engine does it.
func NewSimulated(cfg *config.Config, logger log.Log, b bus.EventBus) (*Host, error) {
	engine := sim.New(sim.WithAspect(cfg.Simulation.Aspect))
	h, err := newHost(cfg, engine, logger, b)
	if err != nil {
		return nil, err
	}
	h.engine = engine

	for _, spec := range cfg.Simulation.Entities {
		handle := engine.SpawnEntity(spec.Name)
		if t := spec.Transform; t != nil {
			engine.AddTransform(handle, vec3(t.Translation), vec3(t.Rotation), vec3(t.Scale))
		}
		if l := spec.PointLight; l != nil {
			engine.AddPointLight(handle, vec3(l.Colour), l.Radius)
		}
		h.onRegisterEntity(uint64(handle), spec.Name)

		ent := scene.NewEntity(handle, engine)
		for _, k := range spec.ComponentKinds() {
			if _, err = scene.GetByName(ent, k.String()); err != nil {
				return nil, fmt.Errorf("entity %s: %w", spec.Name, err)
			}
		}

		for _, name := range spec.Scripts {
			self := engine.AddScript(handle)
			if _, err = h.runtime.CreateScript(name, self, handle); err != nil {
				return nil, fmt.Errorf("entity %s: %w", spec.Name, err)
			}
		}
	}

	for _, k := range cfg.Simulation.Keys() {
		engine.PressKey(int32(k))
	}
	return h, nil
}

// Simulate runs the configured number of frames. A clock goroutine emits
// frame ticks, paced by the wall clock when the simulation is realtime, and
// the frame goroutine advances the engine and updates every script.
func (h *Host) Simulate(ctx context.Context) (Report, error) {
	if h.engine == nil {
		return Report{}, ErrNotSimulated
	}

	spec := h.cfg.Simulation
	delta := spec.FrameDelta()
	start := time.Now()
	var frames uint64

	g, ctx := errgroup.WithContext(ctx)
	ticks := make(chan uint64)

	g.Go(func() error {
		defer close(ticks)

		var pace <-chan time.Time
		if spec.Realtime {
			ticker := time.NewTicker(time.Duration(delta * float64(time.Second)))
			defer ticker.Stop()
			pace = ticker.C
		}

		for i := 1; i <= spec.Frames; i++ {
			if pace != nil {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-pace:
				}
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ticks <- uint64(i):
			}
		}
		return nil
	})

	g.Go(func() error {
		for frame := range ticks {
			h.engine.Tick(delta)
			h.onUpdate(h.app.DeltaTime())
			frames = frame
		}
		return nil
	})

	err := g.Wait()
	report := Report{Frames: frames, Duration: time.Since(start), Stats: h.runtime.Stats()}

	h.logger.Info("simulation finished",
		log.Uint64("frames", report.Frames),
		log.Duration("duration", report.Duration),
		log.Uint64("failures", report.Stats.Failures),
	)
	return report, err
}
