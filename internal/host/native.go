package host

import (
	"context"
	"fmt"

	"github.com/caveman250/PlumbusEngine/internal/config"
	"github.com/caveman250/PlumbusEngine/internal/core/events/bus"
	"github.com/caveman250/PlumbusEngine/internal/core/native"
	"github.com/caveman250/PlumbusEngine/internal/core/observability/log"
)

// NewNative loads the configured engine library, binds its exports and, when
// the engine accepts them, installs the push callbacks for entity
// registration, script lifecycle and the per-frame update.
func NewNative(cfg *config.Config, logger log.Log, b bus.EventBus) (*Host, error) {
	if cfg.Library == "" {
		return nil, ErrNoLibrary
	}

	lib, err := native.Open(cfg.Library)
	if err != nil {
		return nil, err
	}
	table, err := native.Bind(lib, lib, cfg.Symbols)
	if err != nil {
		_ = lib.Close()
		return nil, fmt.Errorf("bind %s: %w", cfg.Library, err)
	}

	h, err := newHost(cfg, native.NewSurface(table), logger, b)
	if err != nil {
		_ = lib.Close()
		return nil, err
	}
	h.lib = lib
	h.table = table

	for field, name := range table.Resolved() {
		h.logger.Debug("symbol bound", log.String("field", field), log.String("export", name))
	}

	if table.ScriptingInstall == nil {
		h.logger.Warn("engine does not export Scripting_Install; scripts will not run")
		return h, nil
	}
	h.callbacks = h.nativeCallbacks()
	table.ScriptingInstall(h.callbacks)
	h.logger.Info("script callbacks installed", log.String("library", lib.Path()))
	return h, nil
}

// Run hands control to the engine's main loop and returns when it exits.
// Call it from the main goroutine with the OS thread locked: engines create
// their window on the calling thread. The engine loop cannot be interrupted;
// ctx is only checked before starting.
func (h *Host) Run(ctx context.Context) error {
	if h.table == nil {
		return ErrNotNative
	}
	if h.table.RunApplication == nil {
		return ErrNoRunLoop
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	h.logger.Info("engine loop starting")
	h.table.RunApplication()
	h.logger.Info("engine loop exited", log.Uint64("frames", h.runtime.Stats().Frames))
	return nil
}
