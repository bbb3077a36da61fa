package view

import (
	"fmt"
	"strings"

	"github.com/freightdesk/tariff/internal/pricing/domain"
	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	"github.com/shopspring/decimal"
)

type thcMode int

const (
	thcSingle thcMode = iota
	thcImportExport
	thcTransit
)

// thcModeFor picks which terminal handling fields an air template exposes.
func thcModeFor(code templatedomain.TemplateCode) thcMode {
	switch code {
	case templatedomain.AirExportTransit:
		return thcTransit
	case templatedomain.SeaToAir, templatedomain.AirImportReexport:
		return thcImportExport
	default:
		return thcSingle
	}
}

// perKgLine renders a weight-based charge with its calculation string.
func perKgLine(c *domain.Charge, currency string) map[string]interface{} {
	if c == nil {
		return map[string]interface{}{
			"amount": decimal.Zero,
			"calc":   "0 " + currency,
		}
	}
	return map[string]interface{}{
		"amount": c.TotalSell,
		"calc": fmt.Sprintf("%s %s/kg × %s kg = %s",
			fmt2(c.SellRate), currency, fmt2(c.Qty), fmt2(c.TotalSell)),
	}
}

func buildAirOrSea2AirView(p *domain.Pricing, canSeeBreakdown bool, currency string, too transferOwnershipInfo, hidden map[string]bool) map[string]interface{} {
	var charges []domain.Charge
	mode := thcSingle
	if p != nil {
		charges = p.Charges
		mode = thcModeFor(p.TemplateCode)
	}

	airLine := perKgLine(findCharge(charges, "AIRFREIGHT"), currency)

	zeroLine := func() map[string]interface{} {
		return map[string]interface{}{"amount": decimal.Zero, "calc": "0 " + currency}
	}
	thcA, thcB := zeroLine(), zeroLine()
	switch mode {
	case thcSingle:
		thcA = perKgLine(findCharge(charges, "THC"), currency)
	case thcImportExport:
		thcA = perKgLine(findCharge(charges, "THC_IMPORT"), currency)
		thcB = perKgLine(findCharge(charges, "THC_EXPORT"), currency)
	case thcTransit:
		thcA = perKgLine(findCharge(charges, "THC_IN"), currency)
		thcB = perKgLine(findCharge(charges, "THC_OUT"), currency)
	}

	mainTotal := airLine["amount"].(decimal.Decimal).
		Add(thcA["amount"].(decimal.Decimal)).
		Add(thcB["amount"].(decimal.Decimal))

	exworksCharges := make([]domain.Charge, 0)
	exworksTotal := decimal.Zero
	for _, c := range charges {
		if c.Group == templatedomain.GroupExworks {
			exworksCharges = append(exworksCharges, c)
			exworksTotal = exworksTotal.Add(c.TotalSell)
		}
	}

	baseTotal := mainTotal.Add(exworksTotal)
	grandTotal := baseTotal.Add(too.Total)

	out := map[string]interface{}{
		"airFreight":               airLine,
		"exworks":                  amt(exworksTotal),
		"total":                    amt(baseTotal),
		"grandTotal":               amt(grandTotal),
		"exworksBreakdownIncluded": false,
	}
	switch mode {
	case thcSingle:
		out["thc"] = thcA
	case thcImportExport:
		out["thcImport"] = thcA
		out["thcExport"] = thcB
	case thcTransit:
		out["thcIn"] = thcA
		out["thcOut"] = thcB
	}
	if too.Summary != nil {
		out["transferOwnership"] = too.Summary
	}

	if !canSeeBreakdown {
		return out
	}

	importClearance := map[string]decimal.Decimal{}
	exportClearance := map[string]decimal.Decimal{}
	for _, c := range exworksCharges {
		if hidden[strings.TrimSpace(c.Code)] || c.TotalSell.IsZero() {
			continue
		}
		if strings.HasPrefix(c.Code, "SEA2AIR_IMP_") {
			importClearance[c.Label] = importClearance[c.Label].Add(c.TotalSell)
		}
		if strings.HasPrefix(c.Code, "SEA2AIR_EXP_") {
			exportClearance[c.Label] = exportClearance[c.Label].Add(c.TotalSell)
		}
	}

	out["exworksBreakdownIncluded"] = true
	if len(too.Lines) > 0 {
		out["transferOwnershipBreakdown"] = too.Lines
	}
	out["importClearanceBreakdown"] = importClearance
	out["exportClearanceBreakdown"] = exportClearance
	return out
}
