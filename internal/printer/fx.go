package printer

import (
	"github.com/smallbiznis/pompabon/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("printer",
	fx.Provide(provideDispatcher),
)

func provideDispatcher(cfg config.Config, log *zap.Logger) Dispatcher {
	return NewDeviceDispatcher(cfg.PrinterDevice, log)
}
