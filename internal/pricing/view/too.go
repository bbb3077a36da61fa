package view

import (
	"strings"

	"github.com/freightdesk/tariff/internal/pricing/domain"
	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	"github.com/shopspring/decimal"
)

type transferOwnershipInfo struct {
	Total   decimal.Decimal
	Summary map[string]interface{} // nil when the total is zero
	Lines   []map[string]interface{}
}

func buildTransferOwnershipInfo(charges []domain.Charge, hidden map[string]bool) transferOwnershipInfo {
	tooCharges := make([]domain.Charge, 0)
	total := decimal.Zero
	for _, c := range charges {
		if c.Group != templatedomain.GroupTransferOwnership {
			continue
		}
		tooCharges = append(tooCharges, c)
		total = total.Add(c.TotalSell)
	}

	lines := make([]map[string]interface{}, 0, len(tooCharges))
	for _, c := range sortByOrder(tooCharges) {
		if c.TotalSell.IsZero() || hidden[strings.TrimSpace(c.Code)] {
			continue
		}
		lines = append(lines, map[string]interface{}{
			"label":  c.Label,
			"code":   c.Code,
			"amount": c.TotalSell,
		})
	}

	info := transferOwnershipInfo{Total: total, Lines: lines}
	if !total.IsZero() {
		info.Summary = amt(total)
	}
	return info
}
