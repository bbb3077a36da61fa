package service

import (
	"encoding/json"
	"testing"

	"github.com/freightdesk/tariff/internal/pricing/domain"
	quotedomain "github.com/freightdesk/tariff/internal/quote/domain"
	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func chargeByCode(t *testing.T, p *domain.Pricing, code string) *domain.Charge {
	t.Helper()
	for i := range p.Charges {
		if p.Charges[i].Code == code {
			return &p.Charges[i]
		}
	}
	t.Fatalf("charge %s not found", code)
	return nil
}

func dec(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func decPtr(s string) *decimal.Decimal {
	v := dec(s)
	return &v
}

func TestUpdateChargeAirfreight(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, nil)

	p, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportLocal,
	})
	require.NoError(t, err)

	air := chargeByCode(t, p, "AIRFREIGHT")
	updated, err := env.svc.UpdateCharge(staffCtx(), domain.UpdateChargeRequest{
		QuoteID:  q.ID,
		ChargeID: air.ID,
		BuyRate:  decPtr("3"),
		SellRate: decPtr("5"),
	})
	require.NoError(t, err)

	// chargeable 55 beats actual 40
	require.True(t, updated.Qty.Equal(dec("55")))
	require.True(t, updated.TotalSell.Equal(dec("275")))
	require.True(t, updated.Margin.Valid)
	require.True(t, updated.Margin.Decimal.Equal(dec("110")))
}

func TestUpdateChargeMergesPartialRates(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, nil)

	p, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportLocal,
	})
	require.NoError(t, err)

	thc := chargeByCode(t, p, "THC")
	_, err = env.svc.UpdateCharge(staffCtx(), domain.UpdateChargeRequest{
		QuoteID:  q.ID,
		ChargeID: thc.ID,
		SellRate: decPtr("2"),
	})
	require.NoError(t, err)

	// buy rate kept from the previous value (zero)
	updated, err := env.svc.UpdateCharge(staffCtx(), domain.UpdateChargeRequest{
		QuoteID:  q.ID,
		ChargeID: thc.ID,
		BuyRate:  decPtr("1"),
	})
	require.NoError(t, err)
	require.True(t, updated.SellRate.Equal(dec("2")))
	require.True(t, updated.Qty.Equal(dec("40")), "THC uses actual weight")
	require.True(t, updated.TotalSell.Equal(dec("80")))
	require.True(t, updated.Margin.Decimal.Equal(dec("40")))
}

func TestUpdateChargeLabelling(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, func(q *quotedomain.Quote) {
		q.Pieces = 120
	})

	p, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportLocal,
	})
	require.NoError(t, err)

	labelling := chargeByCode(t, p, "LABELLING")
	updated, err := env.svc.UpdateCharge(staffCtx(), domain.UpdateChargeRequest{
		QuoteID:  q.ID,
		ChargeID: labelling.ID,
		SellRate: decPtr("999"),
	})
	require.NoError(t, err)

	// 120 pieces above the threshold: 120 × 0.36, rates ignored
	require.True(t, updated.Qty.Equal(dec("120")))
	require.True(t, updated.TotalSell.Equal(dec("43.2")))
	require.False(t, updated.Margin.Valid)
}

func TestUpdateChargeContainerUsesBlockQty(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeSea, nil)

	p, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:       q.ID,
		TemplateCode:  templatedomain.SeaExportLocal,
		ContainerType: domain.Container40,
		ContainerQty:  3,
	})
	require.NoError(t, err)

	ocean := chargeByCode(t, p, "OCEAN_FREIGHT")
	updated, err := env.svc.UpdateCharge(staffCtx(), domain.UpdateChargeRequest{
		QuoteID:  q.ID,
		ChargeID: ocean.ID,
		BuyRate:  decPtr("70"),
		SellRate: decPtr("100"),
	})
	require.NoError(t, err)
	require.True(t, updated.Qty.Equal(dec("3")))
	require.True(t, updated.TotalSell.Equal(dec("300")))
	require.True(t, updated.Margin.Decimal.Equal(dec("90")))
}

func TestUpdateChargeRejectsNegativeRates(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, nil)

	p, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportLocal,
	})
	require.NoError(t, err)

	thc := chargeByCode(t, p, "THC")
	_, err = env.svc.UpdateCharge(staffCtx(), domain.UpdateChargeRequest{
		QuoteID:  q.ID,
		ChargeID: thc.ID,
		SellRate: decPtr("-5"),
	})
	require.ErrorIs(t, err, domain.ErrNegativeRate)

	// discount lines may go negative
	p, err = env.svc.AddLine(staffCtx(), domain.AddLineRequest{QuoteID: q.ID, Code: "LESS_DISCOUNTS"})
	require.NoError(t, err)
	discount := chargeByCode(t, p, "LESS_DISCOUNTS")

	updated, err := env.svc.UpdateCharge(staffCtx(), domain.UpdateChargeRequest{
		QuoteID:  q.ID,
		ChargeID: discount.ID,
		SellRate: decPtr("-50"),
	})
	require.NoError(t, err)
	require.True(t, updated.TotalSell.Equal(dec("-50")))
}

func TestAttachTransferOwnership(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, nil)

	_, err := env.svc.AttachTransferOwnership(staffCtx(), domain.AttachTransferOwnershipRequest{QuoteID: q.ID})
	require.ErrorIs(t, err, domain.ErrDirectionRequired)

	p, err := env.svc.AttachTransferOwnership(staffCtx(), domain.AttachTransferOwnershipRequest{
		QuoteID:   q.ID,
		Direction: templatedomain.DirectionImport,
	})
	require.NoError(t, err)
	require.Equal(t, templatedomain.AirImportTransferOwnership, p.TemplateCode)
	for _, c := range p.Charges {
		require.Equal(t, templatedomain.GroupTransferOwnership, c.Group)
		require.Nil(t, c.BlockID)
		require.True(t, c.Margin.Valid)
	}

	_, err = env.svc.AttachTransferOwnership(staffCtx(), domain.AttachTransferOwnershipRequest{QuoteID: q.ID})
	require.ErrorIs(t, err, domain.ErrTransferOwnershipExists)
}

func TestAttachTransferOwnershipOntoExistingPricing(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, nil)

	_, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportLocal,
	})
	require.NoError(t, err)

	// direction comes from the pricing, the request value is ignored
	p, err := env.svc.AttachTransferOwnership(staffCtx(), domain.AttachTransferOwnershipRequest{
		QuoteID:   q.ID,
		Direction: templatedomain.DirectionImport,
	})
	require.NoError(t, err)
	require.Equal(t, templatedomain.AirExportLocal, p.TemplateCode)

	tooCount := 0
	for _, c := range p.Charges {
		if c.Group == templatedomain.GroupTransferOwnership {
			tooCount++
			require.Nil(t, c.BlockID)
		}
	}
	require.Equal(t, 16, tooCount)
}

func TestOpsTotalsAir(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, nil)

	p, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportLocal,
	})
	require.NoError(t, err)

	air := chargeByCode(t, p, "AIRFREIGHT")
	_, err = env.svc.UpdateCharge(staffCtx(), domain.UpdateChargeRequest{
		QuoteID: q.ID, ChargeID: air.ID, BuyRate: decPtr("3"), SellRate: decPtr("5"),
	})
	require.NoError(t, err)

	awb := chargeByCode(t, p, "AWB")
	_, err = env.svc.UpdateCharge(staffCtx(), domain.UpdateChargeRequest{
		QuoteID: q.ID, ChargeID: awb.ID, SellRate: decPtr("60"),
	})
	require.NoError(t, err)

	totals, err := env.svc.OpsTotals(staffCtx(), q.ID)
	require.NoError(t, err)
	require.Equal(t, "AED", totals.Currency)
	require.Empty(t, totals.Blocks)
	require.Len(t, totals.Rows, len(p.Charges))

	require.True(t, totals.Totals.Airfreight.Equal(dec("275")))
	require.True(t, totals.Totals.Exworks.Equal(dec("60")))
	require.True(t, totals.Totals.Total.Equal(dec("335")))
	require.True(t, totals.Totals.GrandTotal.Equal(dec("335")))
}

func TestOpsTotalsSeaBlocks(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeSea, nil)

	p, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:       q.ID,
		TemplateCode:  templatedomain.SeaExportLocal,
		ContainerType: domain.Container20,
		ContainerQty:  2,
	})
	require.NoError(t, err)

	ocean := chargeByCode(t, p, "OCEAN_FREIGHT")
	_, err = env.svc.UpdateCharge(staffCtx(), domain.UpdateChargeRequest{
		QuoteID: q.ID, ChargeID: ocean.ID, BuyRate: decPtr("400"), SellRate: decPtr("500"),
	})
	require.NoError(t, err)

	thc := chargeByCode(t, p, "THC")
	_, err = env.svc.UpdateCharge(staffCtx(), domain.UpdateChargeRequest{
		QuoteID: q.ID, ChargeID: thc.ID, SellRate: decPtr("100"),
	})
	require.NoError(t, err)

	totals, err := env.svc.OpsTotals(staffCtx(), q.ID)
	require.NoError(t, err)
	require.Len(t, totals.Blocks, 1)

	block := totals.Blocks[0]
	require.Equal(t, domain.Container20, block.ContainerType)
	require.True(t, block.Totals.OceanFreight.Equal(dec("1000")))
	require.True(t, block.Totals.Thc.Equal(dec("200")))
	require.True(t, block.Totals.Exworks.IsZero())
	require.True(t, block.Totals.Total.Equal(dec("1200")))
	require.Nil(t, block.Totals.Import)
	require.True(t, totals.Totals.GrandTotal.Equal(dec("1200")))

	for _, row := range totals.Rows {
		require.NotNil(t, row.BlockID)
	}
}

func TestSnapshot(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, nil)

	p, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportLocal,
	})
	require.NoError(t, err)

	air := chargeByCode(t, p, "AIRFREIGHT")
	_, err = env.svc.UpdateCharge(staffCtx(), domain.UpdateChargeRequest{
		QuoteID: q.ID, ChargeID: air.ID, BuyRate: decPtr("3"), SellRate: decPtr("5"),
	})
	require.NoError(t, err)

	resp, err := env.svc.Snapshot(staffCtx(), q.ID)
	require.NoError(t, err)
	require.Equal(t, 1, resp.PricingVersion)
	require.True(t, resp.TotalSell.Equal(dec("275")))
	require.Equal(t, "AED", resp.Currency)

	var updated quotedomain.Quote
	require.NoError(t, env.db.Where("id = ?", q.ID).First(&updated).Error)
	require.Equal(t, 1, updated.PricingVersion)
	require.True(t, updated.TotalPrice.Equal(dec("275")))
	require.NotNil(t, updated.PricedAt)
	require.EqualValues(t, 100, *updated.PricedBy)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(updated.PricingSnapshot, &doc))
	require.Equal(t, "AIR", doc["mode"])
	require.Equal(t, "EXPORT", doc["direction"])
	require.Equal(t, "AIR_EXPORT_LOCAL", doc["templateCode"])
	require.Equal(t, "AED", doc["currency"])
	require.Contains(t, doc, "blocks")
	require.Contains(t, doc, "charges")
	require.Contains(t, doc, "createdAt")

	totalsDoc, ok := doc["totals"].(map[string]interface{})
	require.True(t, ok)
	require.Contains(t, totalsDoc, "totalSell")

	charges, ok := doc["charges"].([]interface{})
	require.True(t, ok)
	first, ok := charges[0].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"code", "label", "group", "qtyBasis", "qty", "buyRate", "sellRate", "totalSell", "margin", "blockId"} {
		require.Contains(t, first, key)
	}

	// versions accumulate
	resp, err = env.svc.Snapshot(staffCtx(), q.ID)
	require.NoError(t, err)
	require.Equal(t, 2, resp.PricingVersion)
}

func TestSnapshotAllowedWhileLocked(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, nil)

	_, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportLocal,
	})
	require.NoError(t, err)

	_, err = env.svc.Lock(staffCtx(), domain.LockRequest{QuoteID: q.ID, Reason: domain.LockReasonQuotationSent})
	require.NoError(t, err)

	_, err = env.svc.Snapshot(staffCtx(), q.ID)
	require.NoError(t, err)
}

func TestCustomerViewBreakdownGate(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, func(q *quotedomain.Quote) {
		q.ExworksBreakdownStatus = quotedomain.BreakdownApproved
		q.ShowExworksBreakdown = false
	})

	p, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportLocal,
	})
	require.NoError(t, err)

	awb := chargeByCode(t, p, "AWB")
	_, err = env.svc.UpdateCharge(staffCtx(), domain.UpdateChargeRequest{
		QuoteID: q.ID, ChargeID: awb.ID, SellRate: decPtr("60"),
	})
	require.NoError(t, err)

	// approval without the show flag keeps the breakdown closed
	out, err := env.svc.CustomerView(staffCtx(), domain.CustomerViewRequest{QuoteID: q.ID})
	require.NoError(t, err)
	require.Equal(t, false, out["exworksBreakdownIncluded"])

	// staff preview forces it open
	out, err = env.svc.CustomerView(staffCtx(), domain.CustomerViewRequest{QuoteID: q.ID, StaffPreview: true})
	require.NoError(t, err)
	require.Equal(t, true, out["exworksBreakdownIncluded"])

	require.NoError(t, env.db.Model(&quotedomain.Quote{}).Where("id = ?", q.ID).
		Update("show_exworks_breakdown", true).Error)

	out, err = env.svc.CustomerView(staffCtx(), domain.CustomerViewRequest{QuoteID: q.ID})
	require.NoError(t, err)
	require.Equal(t, true, out["exworksBreakdownIncluded"])
}

func TestCustomerViewHiddenCodes(t *testing.T) {
	env := setupPricingService(t)
	hidden, err := json.Marshal([]string{"AWB"})
	require.NoError(t, err)

	q := env.createQuote(t, templatedomain.ModeAir, func(q *quotedomain.Quote) {
		q.ExworksBreakdownStatus = quotedomain.BreakdownApproved
		q.ShowExworksBreakdown = true
		q.ExworksBreakdownHiddenCodes = datatypes.JSON(hidden)
	})

	p, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportLocal,
	})
	require.NoError(t, err)

	for _, code := range []string{"AWB", "CUSTOMS_BOE"} {
		c := chargeByCode(t, p, code)
		_, err = env.svc.UpdateCharge(staffCtx(), domain.UpdateChargeRequest{
			QuoteID: q.ID, ChargeID: c.ID, SellRate: decPtr("10"),
		})
		require.NoError(t, err)
	}

	out, err := env.svc.CustomerView(staffCtx(), domain.CustomerViewRequest{QuoteID: q.ID})
	require.NoError(t, err)

	// the aggregate still counts the hidden charge
	exworks, ok := out["exworks"].(map[string]interface{})
	require.True(t, ok)
	amount, ok := exworks["amount"].(decimal.Decimal)
	require.True(t, ok)
	require.True(t, amount.Equal(dec("20")))
}
