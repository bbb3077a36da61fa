package service

import (
	"context"
	"fmt"

	"github.com/freightdesk/tariff/internal/identity"
	"github.com/freightdesk/tariff/internal/pricing/calc"
	"github.com/freightdesk/tariff/internal/pricing/domain"
	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	"go.uber.org/zap"
)

// AddLine prices an optional template line onto the quote. Sea pricings with
// container blocks require the target block; repeatable lines get a numbered
// label, all other codes may appear once.
func (s *Service) AddLine(ctx context.Context, req domain.AddLineRequest) (*domain.Pricing, error) {
	actor, ok := identity.ActorFromContext(ctx)
	if !ok {
		return nil, domain.ErrActorRequired
	}

	q, err := s.quote(ctx, req.QuoteID)
	if err != nil {
		return nil, err
	}
	if err := assertEditable(q, actor); err != nil {
		return nil, err
	}

	p, err := s.pricing(ctx, q.ID)
	if err != nil {
		return nil, err
	}

	if p.Mode == templatedomain.ModeSea && len(p.Blocks) > 0 {
		if req.BlockID == nil {
			return nil, domain.ErrBlockRequired
		}
		belongs := false
		for _, b := range p.Blocks {
			if b.ID == *req.BlockID {
				belongs = true
				break
			}
		}
		if !belongs {
			return nil, domain.ErrBlockNotFound
		}
	}

	line, err := s.templates.Line(ctx, p.TemplateCode, req.Code)
	if err != nil {
		return nil, err
	}

	label := line.Label
	if line.AllowMultiple {
		count := 0
		for _, c := range p.Charges {
			if c.Code == line.Code {
				count++
			}
		}
		label = fmt.Sprintf("%s #%d", line.Label, count+1)
	} else {
		for _, c := range p.Charges {
			if c.Code != line.Code {
				continue
			}
			if req.BlockID != nil && (c.BlockID == nil || *c.BlockID != *req.BlockID) {
				continue
			}
			return nil, domain.ErrChargeExists
		}
		if !line.IsOptional {
			return nil, domain.ErrLineMandatory
		}
	}

	now := s.clock.Now()
	charges := s.chargesFromLines(p.ID, req.BlockID, []templatedomain.TemplateLine{*line}, now)
	charges[0].Label = label
	if err := s.repo.CreateCharges(ctx, s.db, charges); err != nil {
		return nil, err
	}

	s.log.Info("charge added",
		zap.Int64("quote_id", q.ID),
		zap.String("code", line.Code),
	)
	return s.pricing(ctx, q.ID)
}

// RemoveLine deletes an optional charge. Mandatory template lines stay.
func (s *Service) RemoveLine(ctx context.Context, req domain.RemoveLineRequest) (*domain.Pricing, error) {
	actor, ok := identity.ActorFromContext(ctx)
	if !ok {
		return nil, domain.ErrActorRequired
	}

	q, err := s.quote(ctx, req.QuoteID)
	if err != nil {
		return nil, err
	}
	if err := assertEditable(q, actor); err != nil {
		return nil, err
	}

	p, err := s.pricing(ctx, q.ID)
	if err != nil {
		return nil, err
	}

	var charge *domain.Charge
	for i := range p.Charges {
		if p.Charges[i].ID == req.ChargeID {
			charge = &p.Charges[i]
			break
		}
	}
	if charge == nil {
		return nil, domain.ErrChargeNotFound
	}

	line, err := s.templates.Line(ctx, p.TemplateCode, charge.Code)
	if err != nil {
		return nil, err
	}
	if !line.IsOptional && !line.AllowMultiple {
		return nil, domain.ErrLineMandatory
	}

	if err := s.repo.DeleteCharge(ctx, s.db, p.ID, charge.ID); err != nil {
		return nil, err
	}

	s.log.Info("charge removed",
		zap.Int64("quote_id", q.ID),
		zap.String("code", charge.Code),
	)
	return s.pricing(ctx, q.ID)
}

// UpdateCharge patches the buy/sell rates of one charge and recomputes its
// quantity and totals from the quote's current cargo figures.
func (s *Service) UpdateCharge(ctx context.Context, req domain.UpdateChargeRequest) (*domain.Charge, error) {
	actor, ok := identity.ActorFromContext(ctx)
	if !ok {
		return nil, domain.ErrActorRequired
	}

	q, err := s.quote(ctx, req.QuoteID)
	if err != nil {
		return nil, err
	}
	if err := assertEditable(q, actor); err != nil {
		return nil, err
	}

	p, err := s.pricing(ctx, q.ID)
	if err != nil {
		return nil, err
	}

	var charge *domain.Charge
	for i := range p.Charges {
		if p.Charges[i].ID == req.ChargeID {
			charge = &p.Charges[i]
			break
		}
	}
	if charge == nil {
		return nil, domain.ErrChargeNotFound
	}

	buy := charge.BuyRate
	if req.BuyRate != nil {
		buy = *req.BuyRate
	}
	sell := charge.SellRate
	if req.SellRate != nil {
		sell = *req.SellRate
	}
	if (buy.IsNegative() || sell.IsNegative()) && !charge.CanBeNegative {
		return nil, domain.ErrNegativeRate
	}

	var containerQty *int
	if charge.QtyBasis == templatedomain.BasisContainer {
		if charge.BlockID == nil {
			return nil, domain.ErrBlockRequired
		}
		found := false
		for _, b := range p.Blocks {
			if b.ID == *charge.BlockID {
				qty := b.ContainerQty
				containerQty = &qty
				found = true
				break
			}
		}
		if !found {
			return nil, domain.ErrBlockNotFound
		}
	}

	result, err := calc.Compute(calc.Line{
		QtyBasis:     charge.QtyBasis,
		IsLabelling:  charge.IsLabelling,
		BuyRate:      buy,
		SellRate:     sell,
		ContainerQty: containerQty,
	}, cargoFromQuote(q), s.cfg.Rules())
	if err != nil {
		return nil, err
	}

	charge.BuyRate = buy
	charge.SellRate = sell
	charge.Qty = result.Qty
	charge.TotalSell = result.TotalSell
	charge.Margin = result.Margin
	charge.UpdatedAt = s.clock.Now()

	if err := s.repo.UpdateCharge(ctx, s.db, charge); err != nil {
		return nil, err
	}

	s.log.Info("charge updated",
		zap.Int64("quote_id", q.ID),
		zap.String("code", charge.Code),
		zap.String("total_sell", charge.TotalSell.String()),
	)
	return charge, nil
}
