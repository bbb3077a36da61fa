package quote

import (
	"github.com/freightdesk/tariff/internal/quote/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("quote.repository",
	fx.Provide(repository.Provide),
)
