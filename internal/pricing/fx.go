package pricing

import (
	"github.com/freightdesk/tariff/internal/pricing/repository"
	"github.com/freightdesk/tariff/internal/pricing/service"
	"go.uber.org/fx"
)

var Module = fx.Module("pricing.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
