//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/fpskit/internal/core/observability/log"
)

func InitializeToolkit(level log.Level, path ConstantsPath) (*Toolkit, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
