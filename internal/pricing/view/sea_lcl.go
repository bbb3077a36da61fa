package view

import (
	"strings"

	"github.com/freightdesk/tariff/internal/pricing/domain"
	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	"github.com/shopspring/decimal"
)

// exworksBreakdown filters the exworks charges to visible, non-zero lines.
// withCalc attaches the compact calculation string to the named codes.
func exworksBreakdown(charges []domain.Charge, hidden map[string]bool, withCalc map[string]bool) ([]map[string]interface{}, decimal.Decimal) {
	lines := make([]map[string]interface{}, 0)
	total := decimal.Zero
	for _, c := range sortByOrder(charges) {
		if c.Group != templatedomain.GroupExworks {
			continue
		}
		if c.TotalSell.IsZero() || hidden[strings.TrimSpace(c.Code)] {
			continue
		}
		line := map[string]interface{}{
			"label":  c.Label,
			"code":   c.Code,
			"amount": c.TotalSell,
		}
		if withCalc[c.Code] {
			line["calc"] = calcCompact(c.SellRate, c.Qty, c.TotalSell)
		}
		lines = append(lines, line)
		total = total.Add(c.TotalSell)
	}
	return lines, total
}

func buildSeaExportLclView(p *domain.Pricing, canSeeBreakdown bool, currency string, too transferOwnershipInfo, hidden map[string]bool) map[string]interface{} {
	ocean := findCharge(p.Charges, "OCEAN_FREIGHT")
	oceanAmt := chargeAmount(ocean)

	oceanLine := map[string]interface{}{
		"amount": oceanAmt,
		"calc":   calcCompact(sellRate(ocean), qty(ocean), oceanAmt),
	}

	// hidden lines are excluded from the aggregate too, unlike block views
	exworksLines, exworksAmt := exworksBreakdown(p.Charges, hidden, nil)
	totalAmt := oceanAmt.Add(exworksAmt)
	grandTotal := totalAmt.Add(too.Total)

	out := map[string]interface{}{
		"mode":                     p.TemplateCode,
		"currency":                 currency,
		"oceanFreight":             oceanLine,
		"exworks":                  amt(exworksAmt),
		"total":                    amt(totalAmt),
		"grandTotal":               amt(grandTotal),
		"exworksBreakdownIncluded": false,
	}
	if too.Summary != nil {
		out["transferOwnership"] = too.Summary
	}

	if !canSeeBreakdown {
		return out
	}

	out["exworksBreakdownIncluded"] = true
	if len(too.Lines) > 0 {
		out["transferOwnershipBreakdown"] = too.Lines
	}
	out["exworks"] = map[string]interface{}{
		"amount": exworksAmt,
		"lines":  exworksLines,
	}
	return out
}

func buildSeaImportLclView(p *domain.Pricing, canSeeBreakdown bool, currency string, too transferOwnershipInfo, hidden map[string]bool) map[string]interface{} {
	deliveryOrder := findCharge(p.Charges, "DELIVERY_ORDER")
	doAmt := chargeAmount(deliveryOrder)

	exworksLines, exworksAmt := exworksBreakdown(p.Charges, hidden, map[string]bool{"LCL_CHARGES_CBM": true})
	totalAmt := doAmt.Add(exworksAmt)
	grandTotal := totalAmt.Add(too.Total)

	out := map[string]interface{}{
		"mode":                     p.TemplateCode,
		"currency":                 currency,
		"deliveryOrder":            amt(doAmt),
		"exworks":                  amt(exworksAmt),
		"total":                    amt(totalAmt),
		"grandTotal":               amt(grandTotal),
		"exworksBreakdownIncluded": false,
	}
	if too.Summary != nil {
		out["transferOwnership"] = too.Summary
	}

	if !canSeeBreakdown {
		return out
	}

	out["exworksBreakdownIncluded"] = true
	if len(too.Lines) > 0 {
		out["transferOwnershipBreakdown"] = too.Lines
	}
	out["breakdown"] = map[string]interface{}{
		"deliveryOrder": amt(doAmt),
		"exworksLines":  exworksLines,
	}
	return out
}

func sellRate(c *domain.Charge) decimal.Decimal {
	if c == nil {
		return decimal.Zero
	}
	return c.SellRate
}

func qty(c *domain.Charge) decimal.Decimal {
	if c == nil {
		return decimal.Zero
	}
	return c.Qty
}
