// Package view projects a pricing sheet into the customer-facing quotation
// JSON. It never exposes buy rates or margins; breakdown detail is gated by
// the quote's approval flags.
package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/freightdesk/tariff/internal/pricing/domain"
	"github.com/shopspring/decimal"
)

func fmt2(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func calcCompact(rate, qty, amount decimal.Decimal) string {
	return fmt.Sprintf("%s×%s=%s", fmt2(rate), fmt2(qty), fmt2(amount))
}

func makeHiddenSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c != "" {
			set[c] = true
		}
	}
	return set
}

func chargeAmount(c *domain.Charge) decimal.Decimal {
	if c == nil {
		return decimal.Zero
	}
	return c.TotalSell
}

func findCharge(charges []domain.Charge, code string) *domain.Charge {
	for i := range charges {
		if charges[i].Code == code {
			return &charges[i]
		}
	}
	return nil
}

func blockCharges(charges []domain.Charge, blockID int64) []domain.Charge {
	out := make([]domain.Charge, 0)
	for _, c := range charges {
		if c.BlockID != nil && *c.BlockID == blockID {
			out = append(out, c)
		}
	}
	return out
}

func sortByOrder(charges []domain.Charge) []domain.Charge {
	sorted := append([]domain.Charge(nil), charges...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder < sorted[j].SortOrder
	})
	return sorted
}

// breakdownLines maps charges to {label, code, group, amount} entries,
// dropping zero amounts and hidden codes.
func breakdownLines(charges []domain.Charge, hidden map[string]bool) []map[string]interface{} {
	lines := make([]map[string]interface{}, 0, len(charges))
	for _, c := range sortByOrder(charges) {
		if c.TotalSell.IsZero() || hidden[strings.TrimSpace(c.Code)] {
			continue
		}
		lines = append(lines, map[string]interface{}{
			"label":  c.Label,
			"code":   c.Code,
			"group":  c.Group,
			"amount": c.TotalSell,
		})
	}
	return lines
}

func amt(d decimal.Decimal) map[string]interface{} {
	return map[string]interface{}{"amount": d}
}
