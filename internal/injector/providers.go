package injector

import (
	"github.com/caveman250/PlumbusEngine/internal/config"
	"github.com/caveman250/PlumbusEngine/internal/core/events/bus"
	"github.com/caveman250/PlumbusEngine/internal/core/observability/log"
)

// ProvideLogger builds the process logger from the log section.
func ProvideLogger(cfg *config.Config) log.Log {
	return log.NewWithConfig(cfg.LogConfig())
}

func ProvideBus() bus.EventBus {
	return bus.New()
}
