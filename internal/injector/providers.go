package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/fpskit/internal/core/observability/log"
	"github.com/zeusync/fpskit/pkg/constants"
	"github.com/zeusync/fpskit/pkg/utils"
)

// ConstantsPath is the tuning file handed to constants.Load.
type ConstantsPath string

// Toolkit is everything a host needs: a logger, the loaded table and the
// helper namespace bound to it.
type Toolkit struct {
	Logger    *log.Logger
	Constants *constants.Constants
	Utils     *utils.Namespace
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideConstants,
	ProvideNamespace,
	wire.Struct(new(Toolkit), "*"),
)

func ProvideLogger(level log.Level) *log.Logger {
	return log.New(level, log.WithEncoding("console"))
}

func ProvideConstants(logger *log.Logger, path ConstantsPath) (*constants.Constants, error) {
	return constants.Load(string(path), constants.WithLogger(logger))
}

func ProvideNamespace(c *constants.Constants) *utils.Namespace {
	return utils.New(c)
}
