package service

import (
	"context"
	"encoding/json"

	"github.com/freightdesk/tariff/internal/pricing/domain"
	"github.com/freightdesk/tariff/internal/pricing/view"
)

// CustomerView projects the pricing into the quotation the customer sees.
// A quote without pricing renders the zeroed air view. Breakdown detail
// requires the customer's approved flags unless staff preview forces it.
func (s *Service) CustomerView(ctx context.Context, req domain.CustomerViewRequest) (map[string]interface{}, error) {
	q, err := s.quote(ctx, req.QuoteID)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.FindByQuoteID(ctx, s.db, q.ID)
	if err != nil {
		return nil, err
	}

	var hiddenCodes []string
	if len(q.ExworksBreakdownHiddenCodes) > 0 {
		// stored as a JSON string array; a malformed value hides nothing
		_ = json.Unmarshal(q.ExworksBreakdownHiddenCodes, &hiddenCodes)
	}

	return view.Build(view.Params{
		Pricing:          p,
		CanSeeBreakdown:  req.StaffPreview || q.BreakdownVisible(),
		CurrencyFallback: s.cfg.Currency(),
		HiddenCodes:      hiddenCodes,
	}), nil
}
