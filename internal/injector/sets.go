//go:build wireinject
// +build wireinject

package injector

import "github.com/google/wire"

var hostSet = wire.NewSet(ProvideLogger, ProvideBus)
