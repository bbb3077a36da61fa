package service

import (
	"context"

	"github.com/freightdesk/tariff/internal/pricing/domain"
	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	"github.com/shopspring/decimal"
)

func sumByGroup(charges []domain.Charge, group templatedomain.ChargeGroup) decimal.Decimal {
	total := decimal.Zero
	for _, c := range charges {
		if c.Group == group {
			total = total.Add(c.TotalSell)
		}
	}
	return total
}

func findByCode(charges []domain.Charge, code string) *domain.Charge {
	for i := range charges {
		if charges[i].Code == code {
			return &charges[i]
		}
	}
	return nil
}

func totalOrZero(c *domain.Charge) decimal.Decimal {
	if c == nil {
		return decimal.Zero
	}
	return c.TotalSell
}

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

// OpsTotals is the internal margin view: every charge row with buy, sell and
// margin, plus per-block and per-group totals.
func (s *Service) OpsTotals(ctx context.Context, quoteID int64) (*domain.OpsTotalsResponse, error) {
	p, err := s.pricing(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	if p.Mode == templatedomain.ModeSea && len(p.Blocks) > 0 {
		return s.seaBlockTotals(p), nil
	}
	return s.airTotals(p), nil
}

func (s *Service) seaBlockTotals(p *domain.Pricing) *domain.OpsTotalsResponse {
	rows := make([]domain.OpsRow, 0, len(p.Charges))
	for _, c := range p.Charges {
		rows = append(rows, domain.OpsRow{
			Field:       c.Label,
			Code:        c.Code,
			Group:       c.Group,
			BlockID:     c.BlockID,
			BuyRate:     c.BuyRate,
			SellRate:    c.SellRate,
			QtyOrWeight: c.Qty,
			TotalSell:   c.TotalSell,
			Margin:      c.Margin,
		})
	}

	transit := p.TemplateCode == templatedomain.SeaExportTransit
	blocks := make([]domain.OpsBlock, 0, len(p.Blocks))
	grandTotal := decimal.Zero

	for _, b := range p.Blocks {
		blockCharges := make([]domain.Charge, 0)
		for _, c := range p.Charges {
			if c.BlockID != nil && *c.BlockID == b.ID {
				blockCharges = append(blockCharges, c)
			}
		}

		ocean := totalOrZero(findByCode(blockCharges, "OCEAN_FREIGHT"))
		thc := totalOrZero(findByCode(blockCharges, "THC"))
		deliveryOrder := totalOrZero(findByCode(blockCharges, "DELIVERY_ORDER"))
		thcIn := totalOrZero(findByCode(blockCharges, "THC_IN"))
		thcOut := totalOrZero(findByCode(blockCharges, "THC_OUT"))
		exworks := sumByGroup(blockCharges, templatedomain.GroupExworks)

		var totals domain.OpsBlockTotals
		if transit {
			importTotal := deliveryOrder.Add(thcIn)
			exportTotal := ocean.Add(thcOut)
			totals = domain.OpsBlockTotals{
				Import:  ptr(importTotal),
				Export:  ptr(exportTotal),
				Exworks: exworks,
				Total:   importTotal.Add(exportTotal).Add(exworks),
			}
		} else {
			totals = domain.OpsBlockTotals{
				OceanFreight: ptr(ocean),
				Thc:          ptr(thc),
				Exworks:      exworks,
				Total:        ocean.Add(thc).Add(exworks),
			}
		}
		grandTotal = grandTotal.Add(totals.Total)

		blocks = append(blocks, domain.OpsBlock{
			BlockID:       b.ID,
			ContainerType: b.ContainerType,
			ContainerQty:  b.ContainerQty,
			IsAddon:       b.IsAddon,
			Totals:        totals,
		})
	}

	return &domain.OpsTotalsResponse{
		Currency: p.Currency,
		Rows:     rows,
		Blocks:   blocks,
		Totals:   domain.OpsSummaryTotals{GrandTotal: grandTotal},
	}
}

func (s *Service) airTotals(p *domain.Pricing) *domain.OpsTotalsResponse {
	rows := make([]domain.OpsRow, 0, len(p.Charges))
	for _, c := range p.Charges {
		rows = append(rows, domain.OpsRow{
			Field:       c.Label,
			Code:        c.Code,
			Group:       c.Group,
			BuyRate:     c.BuyRate,
			SellRate:    c.SellRate,
			QtyOrWeight: c.Qty,
			TotalSell:   c.TotalSell,
			Margin:      c.Margin,
		})
	}

	mainTotal := sumByGroup(p.Charges, templatedomain.GroupMain)
	exworks := sumByGroup(p.Charges, templatedomain.GroupExworks)
	clearance := sumByGroup(p.Charges, templatedomain.GroupClearance)
	total := mainTotal.Add(exworks).Add(clearance)
	transferOwnership := sumByGroup(p.Charges, templatedomain.GroupTransferOwnership)
	grandTotal := total.Add(transferOwnership)

	return &domain.OpsTotalsResponse{
		Currency: p.Currency,
		Rows:     rows,
		Totals: domain.OpsSummaryTotals{
			Airfreight:        ptr(totalOrZero(findByCode(p.Charges, "AIRFREIGHT"))),
			Thc:               ptr(totalOrZero(findByCode(p.Charges, "THC"))),
			ThcIn:             ptr(totalOrZero(findByCode(p.Charges, "THC_IN"))),
			ThcOut:            ptr(totalOrZero(findByCode(p.Charges, "THC_OUT"))),
			Exworks:           ptr(exworks),
			Clearance:         ptr(clearance),
			TransferOwnership: ptr(transferOwnership),
			Total:             ptr(total),
			GrandTotal:        grandTotal,
		},
	}
}
