package view

import (
	"github.com/freightdesk/tariff/internal/pricing/domain"
	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
)

// Params drive one customer view projection.
type Params struct {
	// Pricing may be nil when the quote has not been priced yet; the air
	// view then renders zeros.
	Pricing          *domain.Pricing
	CanSeeBreakdown  bool
	CurrencyFallback string
	HiddenCodes      []string
}

// Build dispatches on mode and template to the scenario-specific projection.
func Build(p Params) map[string]interface{} {
	currency := p.CurrencyFallback
	if currency == "" {
		currency = "AED"
	}

	var charges []domain.Charge
	if p.Pricing != nil {
		charges = p.Pricing.Charges
		if p.Pricing.Currency != "" {
			currency = p.Pricing.Currency
		}
	}

	hidden := makeHiddenSet(p.HiddenCodes)
	too := buildTransferOwnershipInfo(charges, hidden)

	if p.Pricing != nil && p.Pricing.Mode == templatedomain.ModeSea {
		switch p.Pricing.TemplateCode {
		case templatedomain.SeaExportLocal, templatedomain.SeaExportFreezone:
			return buildSeaLocalFreezoneBlocksView(p.Pricing, p.CanSeeBreakdown, currency, too, hidden)
		case templatedomain.SeaExportTransit:
			return buildSeaTransitBlocksView(p.Pricing, p.CanSeeBreakdown, currency, too, hidden)
		case templatedomain.SeaExportLCL:
			return buildSeaExportLclView(p.Pricing, p.CanSeeBreakdown, currency, too, hidden)
		case templatedomain.SeaImportLocal:
			return buildSeaImportLocalView(p.Pricing, p.CanSeeBreakdown, currency, too, hidden)
		case templatedomain.SeaImportLCL:
			return buildSeaImportLclView(p.Pricing, p.CanSeeBreakdown, currency, too, hidden)
		}
	}

	return buildAirOrSea2AirView(p.Pricing, p.CanSeeBreakdown, currency, too, hidden)
}
