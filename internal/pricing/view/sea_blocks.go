package view

import (
	"github.com/freightdesk/tariff/internal/pricing/domain"
	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	"github.com/shopspring/decimal"
)

func containerList(blocks []domain.ContainerBlock) []map[string]interface{} {
	containers := make([]map[string]interface{}, 0, len(blocks))
	for _, b := range blocks {
		containers = append(containers, map[string]interface{}{
			"containerType": b.ContainerType,
			"containerQty":  b.ContainerQty,
			"isAddon":       b.IsAddon,
		})
	}
	return containers
}

// rateLine renders a container charge with sell rate, quantity and the
// compact calculation string.
func rateLine(c *domain.Charge) map[string]interface{} {
	rate, qty, amount := decimal.Zero, decimal.Zero, decimal.Zero
	if c != nil {
		rate, qty, amount = c.SellRate, c.Qty, c.TotalSell
	}
	return map[string]interface{}{
		"sellRate": rate,
		"qtyUsed":  qty,
		"amount":   amount,
		"calc":     calcCompact(rate, qty, amount),
	}
}

type seaBlockSummary struct {
	base  map[string]interface{}
	lines []map[string]interface{}
	total decimal.Decimal
}

func (s seaBlockSummary) withoutLines() map[string]interface{} {
	return s.base
}

func (s seaBlockSummary) withLines() map[string]interface{} {
	out := map[string]interface{}{
		"blockId":       s.base["blockId"],
		"containerType": s.base["containerType"],
		"containerQty":  s.base["containerQty"],
		"isAddon":       s.base["isAddon"],
		"lines":         s.lines,
		"total":         s.base["total"],
	}
	return out
}

func seaBlocksEnvelope(p *domain.Pricing, currency string, too transferOwnershipInfo, summaries []seaBlockSummary, canSeeBreakdown bool) map[string]interface{} {
	blocksTotal := decimal.Zero
	for _, s := range summaries {
		blocksTotal = blocksTotal.Add(s.total)
	}
	grandTotal := blocksTotal.Add(too.Total)

	blocks := make([]map[string]interface{}, 0, len(summaries))
	for _, s := range summaries {
		if canSeeBreakdown {
			blocks = append(blocks, s.withLines())
		} else {
			blocks = append(blocks, s.withoutLines())
		}
	}

	out := map[string]interface{}{
		"mode":                     p.TemplateCode,
		"currency":                 currency,
		"containers":               containerList(p.Blocks),
		"blocks":                   blocks,
		"grandTotal":               amt(grandTotal),
		"exworksBreakdownIncluded": canSeeBreakdown,
	}
	if too.Summary != nil {
		out["transferOwnership"] = too.Summary
	}
	if canSeeBreakdown && len(too.Lines) > 0 {
		out["transferOwnershipBreakdown"] = too.Lines
	}
	return out
}

func buildSeaLocalFreezoneBlocksView(p *domain.Pricing, canSeeBreakdown bool, currency string, too transferOwnershipInfo, hidden map[string]bool) map[string]interface{} {
	summaries := make([]seaBlockSummary, 0, len(p.Blocks))
	for _, b := range p.Blocks {
		bCharges := blockCharges(p.Charges, b.ID)

		ocean := findCharge(bCharges, "OCEAN_FREIGHT")
		thc := findCharge(bCharges, "THC")

		exworks := decimal.Zero
		for _, c := range bCharges {
			if c.Group == templatedomain.GroupExworks {
				exworks = exworks.Add(c.TotalSell)
			}
		}
		total := chargeAmount(ocean).Add(chargeAmount(thc)).Add(exworks)

		summaries = append(summaries, seaBlockSummary{
			base: map[string]interface{}{
				"blockId":       b.ID,
				"containerType": b.ContainerType,
				"containerQty":  b.ContainerQty,
				"isAddon":       b.IsAddon,
				"oceanFreight":  rateLine(ocean),
				"thc":           rateLine(thc),
				"exworks":       amt(exworks),
				"total":         amt(total),
			},
			lines: breakdownLines(bCharges, hidden),
			total: total,
		})
	}

	return seaBlocksEnvelope(p, currency, too, summaries, canSeeBreakdown)
}

func buildSeaTransitBlocksView(p *domain.Pricing, canSeeBreakdown bool, currency string, too transferOwnershipInfo, hidden map[string]bool) map[string]interface{} {
	summaries := make([]seaBlockSummary, 0, len(p.Blocks))
	for _, b := range p.Blocks {
		bCharges := blockCharges(p.Charges, b.ID)

		deliveryOrder := findCharge(bCharges, "DELIVERY_ORDER")
		thcIn := findCharge(bCharges, "THC_IN")
		ocean := findCharge(bCharges, "OCEAN_FREIGHT")
		thcOut := findCharge(bCharges, "THC_OUT")

		importTotal := chargeAmount(deliveryOrder).Add(chargeAmount(thcIn))
		exportTotal := chargeAmount(ocean).Add(chargeAmount(thcOut))

		exworks := decimal.Zero
		for _, c := range bCharges {
			if c.Group == templatedomain.GroupExworks {
				exworks = exworks.Add(c.TotalSell)
			}
		}
		total := importTotal.Add(exportTotal).Add(exworks)

		summaries = append(summaries, seaBlockSummary{
			base: map[string]interface{}{
				"blockId":       b.ID,
				"containerType": b.ContainerType,
				"containerQty":  b.ContainerQty,
				"isAddon":       b.IsAddon,
				"import": map[string]interface{}{
					"deliveryOrder": rateLine(deliveryOrder),
					"thcIn":         rateLine(thcIn),
					"total":         amt(importTotal),
				},
				"export": map[string]interface{}{
					"oceanFreight": rateLine(ocean),
					"thcOut":       rateLine(thcOut),
					"total":        amt(exportTotal),
				},
				"exworks": amt(exworks),
				"total":   amt(total),
			},
			lines: breakdownLines(bCharges, hidden),
			total: total,
		})
	}

	return seaBlocksEnvelope(p, currency, too, summaries, canSeeBreakdown)
}
