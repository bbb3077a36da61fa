package view

import (
	"strings"

	"github.com/freightdesk/tariff/internal/pricing/domain"
	"github.com/shopspring/decimal"
)

func buildSeaImportLocalView(p *domain.Pricing, canSeeBreakdown bool, currency string, too transferOwnershipInfo, hidden map[string]bool) map[string]interface{} {
	deliveryOrder := findCharge(p.Charges, "DELIVERY_ORDER")
	doAmt := chargeAmount(deliveryOrder)

	// THC repeats per container block; the summary shows the sum
	thcTotal := decimal.Zero
	for _, c := range p.Charges {
		if c.Code == "THC" {
			thcTotal = thcTotal.Add(c.TotalSell)
		}
	}

	exworksLines, exworksAmt := exworksBreakdown(p.Charges, hidden, nil)
	totalAmt := doAmt.Add(thcTotal).Add(exworksAmt)
	grandTotal := totalAmt.Add(too.Total)

	out := map[string]interface{}{
		"mode":                     p.TemplateCode,
		"currency":                 currency,
		"containers":               containerList(p.Blocks),
		"deliveryOrder":            amt(doAmt),
		"thc":                      amt(thcTotal),
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

	thcLines := make([]map[string]interface{}, 0)
	for _, c := range p.Charges {
		if c.Code != "THC" || c.TotalSell.IsZero() || hidden[strings.TrimSpace(c.Code)] {
			continue
		}
		thcLines = append(thcLines, map[string]interface{}{
			"containerBlockId": c.BlockID,
			"code":             c.Code,
			"amount":           c.TotalSell,
		})
	}

	out["exworksBreakdownIncluded"] = true
	if len(too.Lines) > 0 {
		out["transferOwnershipBreakdown"] = too.Lines
	}
	out["breakdown"] = map[string]interface{}{
		"deliveryOrder": amt(doAmt),
		"thcLines":      thcLines,
		"exworksLines":  exworksLines,
	}
	return out
}
