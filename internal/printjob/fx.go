package printjob

import (
	"github.com/smallbiznis/pompabon/internal/printjob/repository"
	"github.com/smallbiznis/pompabon/internal/printjob/service"
	"go.uber.org/fx"
)

var Module = fx.Module("printjob.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
