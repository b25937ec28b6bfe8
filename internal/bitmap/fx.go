package bitmap

import "go.uber.org/fx"

var Module = fx.Module("bitmap",
	fx.Provide(NewService),
	fx.Provide(NewResolver),
)
