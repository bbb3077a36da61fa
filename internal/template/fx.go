package template

import (
	"github.com/freightdesk/tariff/internal/template/repository"
	"github.com/freightdesk/tariff/internal/template/service"
	"go.uber.org/fx"
)

var Module = fx.Module("template.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
