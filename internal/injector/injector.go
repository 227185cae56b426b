//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/caveman250/PlumbusEngine/internal/config"
	"github.com/caveman250/PlumbusEngine/internal/host"
)

func InitializeSimulatedHost(cfg *config.Config) (*host.Host, error) {
	wire.Build(hostSet, host.NewSimulated)
	return nil, nil
}

func InitializeNativeHost(cfg *config.Config) (*host.Host, error) {
	wire.Build(hostSet, host.NewNative)
	return nil, nil
}
