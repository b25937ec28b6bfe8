package receipt

import (
	"github.com/smallbiznis/pompabon/internal/config"
	"github.com/smallbiznis/pompabon/internal/receipt/compose"
	"github.com/smallbiznis/pompabon/internal/receipt/format"
	"github.com/smallbiznis/pompabon/internal/receipt/service"
	"go.uber.org/fx"
)

var Module = fx.Module("receipt.service",
	fx.Provide(provideComposer),
	fx.Provide(format.NewNumberGenerator),
	fx.Provide(service.New),
)

func provideComposer(cfg config.Config) *compose.Composer {
	return compose.New(compose.StationProfile{
		SiteCode:       cfg.StationSiteCode,
		Name:           cfg.StationName,
		Address:        cfg.StationAddress,
		FallbackHeader: cfg.StationFallback,
	})
}
