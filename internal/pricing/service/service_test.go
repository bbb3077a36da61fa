package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/freightdesk/tariff/internal/clock"
	"github.com/freightdesk/tariff/internal/config"
	"github.com/freightdesk/tariff/internal/identity"
	"github.com/freightdesk/tariff/internal/pricing/domain"
	pricingrepo "github.com/freightdesk/tariff/internal/pricing/repository"
	quotedomain "github.com/freightdesk/tariff/internal/quote/domain"
	quoterepo "github.com/freightdesk/tariff/internal/quote/repository"
	"github.com/freightdesk/tariff/internal/template/catalog"
	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	templaterepo "github.com/freightdesk/tariff/internal/template/repository"
	templateservice "github.com/freightdesk/tariff/internal/template/service"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testEnv struct {
	svc    domain.Service
	db     *gorm.DB
	clock  *clock.FakeClock
	node   *snowflake.Node
	quotes quotedomain.Repository
}

func mustNode(t *testing.T) *snowflake.Node {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	return node
}

func setupPricingService(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_loc=auto", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = db.AutoMigrate(
		&templatedomain.Template{},
		&templatedomain.TemplateLine{},
		&quotedomain.Quote{},
		&domain.Pricing{},
		&domain.ContainerBlock{},
		&domain.Charge{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node := mustNode(t)
	ctx := context.Background()

	tmplRepo := templaterepo.Provide()
	for _, entry := range catalog.Templates() {
		tmpl := &templatedomain.Template{
			ID:        node.Generate().Int64(),
			Code:      entry.Code,
			Name:      entry.Name,
			Mode:      entry.Mode,
			Direction: entry.Direction,
		}
		if err := tmplRepo.Upsert(ctx, db, tmpl, entry.Lines); err != nil {
			t.Fatalf("seed %s: %v", entry.Code, err)
		}
	}

	holder, err := config.NewPricingConfigHolder()
	if err != nil {
		t.Fatalf("pricing config: %v", err)
	}

	templates := templateservice.New(templateservice.Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: tmplRepo,
	})

	fake := clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	quotes := quoterepo.Provide()

	svc := New(Params{
		DB:        db,
		Log:       zap.NewNop(),
		GenID:     node,
		Repo:      pricingrepo.Provide(),
		Quotes:    quotes,
		Templates: templates,
		Pricing:   holder,
		Clock:     fake,
	})

	return &testEnv{svc: svc, db: db, clock: fake, node: node, quotes: quotes}
}

func (e *testEnv) createQuote(t *testing.T, mode templatedomain.ShipmentMode, mutate func(*quotedomain.Quote)) *quotedomain.Quote {
	t.Helper()
	q := &quotedomain.Quote{
		ID:                 e.node.Generate().Int64(),
		Reference:          fmt.Sprintf("QR-%d", e.node.Generate().Int64()),
		Mode:               mode,
		Pieces:             10,
		WeightKg:           decimal.NewFromInt(40),
		ChargeableWeightKg: decimal.NewFromInt(55),
		Currency:           "AED",
		CreatedAt:          e.clock.Now(),
		UpdatedAt:          e.clock.Now(),
	}
	if mutate != nil {
		mutate(q)
	}
	if err := e.quotes.Create(context.Background(), e.db, q); err != nil {
		t.Fatalf("create quote: %v", err)
	}
	return q
}

func staffCtx() context.Context {
	return identity.WithActor(context.Background(), identity.Actor{ID: 100, Role: identity.RoleStaff})
}

func adminCtx() context.Context {
	return identity.WithActor(context.Background(), identity.Actor{ID: 1, Role: identity.RoleAdmin})
}

func TestInitializeAirCreatesDefaults(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, nil)

	p, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportLocal,
	})
	require.NoError(t, err)
	require.Equal(t, templatedomain.AirExportLocal, p.TemplateCode)
	require.Equal(t, "AED", p.Currency)
	require.Empty(t, p.Blocks)

	codes := make(map[string]domain.Charge, len(p.Charges))
	for _, c := range p.Charges {
		codes[c.Code] = c
		require.True(t, c.BuyRate.IsZero())
		require.True(t, c.SellRate.IsZero())
		require.True(t, c.Qty.Equal(decimal.NewFromInt(1)))
		require.True(t, c.TotalSell.IsZero())
		require.Nil(t, c.BlockID)
	}
	require.Contains(t, codes, "AIRFREIGHT")
	require.Contains(t, codes, "THC")
	require.Contains(t, codes, "LABELLING")
	require.NotContains(t, codes, "DG_HANDLING")

	require.False(t, codes["LABELLING"].Margin.Valid)
	require.True(t, codes["AIRFREIGHT"].Margin.Valid)
	require.True(t, codes["AIRFREIGHT"].Margin.Decimal.IsZero())
}

func TestInitializeRejectsModeMismatch(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, nil)

	_, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.SeaExportLocal,
		ContainerType: domain.Container20,
		ContainerQty: 1,
	})
	require.ErrorIs(t, err, domain.ErrTemplateModeMismatch)
}

func TestInitializeSeaRequiresContainerDetail(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeSea, nil)

	_, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.SeaExportLocal,
	})
	require.ErrorIs(t, err, domain.ErrContainerDetailRequired)

	_, err = env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:       q.ID,
		TemplateCode:  templatedomain.SeaExportLocal,
		ContainerType: domain.ContainerType("C45"),
		ContainerQty:  2,
	})
	require.ErrorIs(t, err, domain.ErrContainerDetailRequired)

	p, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:       q.ID,
		TemplateCode:  templatedomain.SeaExportLocal,
		ContainerType: domain.Container20,
		ContainerQty:  2,
	})
	require.NoError(t, err)
	require.Len(t, p.Blocks, 1)
	require.Equal(t, domain.Container20, p.Blocks[0].ContainerType)
	require.Equal(t, 2, p.Blocks[0].ContainerQty)
	require.False(t, p.Blocks[0].IsAddon)
	require.Equal(t, 10, p.Blocks[0].SortOrder)

	for _, c := range p.Charges {
		require.NotNil(t, c.BlockID)
		require.Equal(t, p.Blocks[0].ID, *c.BlockID)
	}
}

func TestInitializeReplacesExistingPricing(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, nil)

	first, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportLocal,
	})
	require.NoError(t, err)

	second, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportFreezone,
	})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, templatedomain.AirExportFreezone, second.TemplateCode)

	var count int64
	require.NoError(t, env.db.Model(&domain.Pricing{}).Where("quote_id = ?", q.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)

	var orphaned int64
	require.NoError(t, env.db.Model(&domain.Charge{}).Where("pricing_id = ?", first.ID).Count(&orphaned).Error)
	require.EqualValues(t, 0, orphaned)
}

func TestLockGuardBlocksStaffNotAdmin(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, nil)

	_, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportLocal,
	})
	require.NoError(t, err)

	state, err := env.svc.Lock(staffCtx(), domain.LockRequest{QuoteID: q.ID, Reason: "quotation_sent"})
	require.NoError(t, err)
	require.True(t, state.Locked)
	require.Equal(t, "quotation_sent", *state.Reason)
	require.EqualValues(t, 100, *state.LockedBy)

	_, err = env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportLocal,
	})
	require.True(t, domain.IsPricingLocked(err))

	var lockedErr *domain.PricingLockedError
	require.ErrorAs(t, err, &lockedErr)
	require.Equal(t, env.clock.Now(), lockedErr.LockedAt)

	// admin bypasses the lock
	_, err = env.svc.Initialize(adminCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportLocal,
	})
	require.NoError(t, err)
}

func TestLockRequiresReasonAndUnlockRequiresAdmin(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, nil)

	_, err := env.svc.Lock(staffCtx(), domain.LockRequest{QuoteID: q.ID, Reason: "   "})
	require.ErrorIs(t, err, domain.ErrLockReasonRequired)

	_, err = env.svc.Lock(staffCtx(), domain.LockRequest{QuoteID: q.ID, Reason: domain.LockReasonBookingConfirmed})
	require.NoError(t, err)

	_, err = env.svc.Unlock(staffCtx(), q.ID)
	require.ErrorIs(t, err, domain.ErrAdminOnly)

	state, err := env.svc.Unlock(adminCtx(), q.ID)
	require.NoError(t, err)
	require.False(t, state.Locked)
	require.Nil(t, state.LockedAt)
	require.Nil(t, state.Reason)
}

func TestAddContainerBlock(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeSea, nil)

	_, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:       q.ID,
		TemplateCode:  templatedomain.SeaExportLocal,
		ContainerType: domain.Container20,
		ContainerQty:  1,
	})
	require.NoError(t, err)

	_, err = env.svc.AddContainerBlock(staffCtx(), domain.AddBlockRequest{
		QuoteID:       q.ID,
		ContainerType: domain.Container20,
		ContainerQty:  3,
	})
	require.ErrorIs(t, err, domain.ErrDuplicateContainerType)

	p, err := env.svc.AddContainerBlock(staffCtx(), domain.AddBlockRequest{
		QuoteID:       q.ID,
		ContainerType: domain.Container40,
		ContainerQty:  3,
	})
	require.NoError(t, err)
	require.Len(t, p.Blocks, 2)

	addon := p.Blocks[1]
	require.True(t, addon.IsAddon)
	require.Equal(t, 20, addon.SortOrder)
	require.Equal(t, domain.Container40, addon.ContainerType)

	// default lines replayed into the new block
	addonCharges := 0
	for _, c := range p.Charges {
		if c.BlockID != nil && *c.BlockID == addon.ID {
			addonCharges++
		}
	}
	require.Equal(t, 9, addonCharges)
}

func TestAddContainerBlockRejectedForAir(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, nil)

	_, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportLocal,
	})
	require.NoError(t, err)

	_, err = env.svc.AddContainerBlock(staffCtx(), domain.AddBlockRequest{
		QuoteID:       q.ID,
		ContainerType: domain.Container20,
		ContainerQty:  1,
	})
	require.ErrorIs(t, err, domain.ErrAddonNotSupported)
}

func TestAddContainerBlockRejectedForSeaImport(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeSea, nil)

	_, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:       q.ID,
		TemplateCode:  templatedomain.SeaImportLocal,
		ContainerType: domain.Container20,
		ContainerQty:  1,
	})
	require.NoError(t, err)

	_, err = env.svc.AddContainerBlock(staffCtx(), domain.AddBlockRequest{
		QuoteID:       q.ID,
		ContainerType: domain.Container40,
		ContainerQty:  1,
	})
	require.ErrorIs(t, err, domain.ErrAddonNotSupported)
}

func TestAddLine(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, nil)

	_, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportLocal,
	})
	require.NoError(t, err)

	p, err := env.svc.AddLine(staffCtx(), domain.AddLineRequest{QuoteID: q.ID, Code: "DG_HANDLING"})
	require.NoError(t, err)

	var added *domain.Charge
	for i := range p.Charges {
		if p.Charges[i].Code == "DG_HANDLING" {
			added = &p.Charges[i]
		}
	}
	require.NotNil(t, added)
	require.Equal(t, "DG Handling", added.Label)

	_, err = env.svc.AddLine(staffCtx(), domain.AddLineRequest{QuoteID: q.ID, Code: "DG_HANDLING"})
	require.ErrorIs(t, err, domain.ErrChargeExists)

	_, err = env.svc.AddLine(staffCtx(), domain.AddLineRequest{QuoteID: q.ID, Code: "AIRFREIGHT"})
	require.ErrorIs(t, err, domain.ErrChargeExists)

	_, err = env.svc.AddLine(staffCtx(), domain.AddLineRequest{QuoteID: q.ID, Code: "NOT_A_CODE"})
	require.ErrorIs(t, err, templatedomain.ErrLineNotFound)
}

func TestAddLineSeaRequiresBlock(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeSea, nil)

	p, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:       q.ID,
		TemplateCode:  templatedomain.SeaExportLocal,
		ContainerType: domain.Container20,
		ContainerQty:  1,
	})
	require.NoError(t, err)

	_, err = env.svc.AddLine(staffCtx(), domain.AddLineRequest{QuoteID: q.ID, Code: "LESS_DISCOUNTS"})
	require.ErrorIs(t, err, domain.ErrBlockRequired)

	bogus := env.node.Generate().Int64()
	_, err = env.svc.AddLine(staffCtx(), domain.AddLineRequest{QuoteID: q.ID, Code: "LESS_DISCOUNTS", BlockID: &bogus})
	require.ErrorIs(t, err, domain.ErrBlockNotFound)

	blockID := p.Blocks[0].ID
	updated, err := env.svc.AddLine(staffCtx(), domain.AddLineRequest{QuoteID: q.ID, Code: "LESS_DISCOUNTS", BlockID: &blockID})
	require.NoError(t, err)

	found := false
	for _, c := range updated.Charges {
		if c.Code == "LESS_DISCOUNTS" {
			found = true
			require.NotNil(t, c.BlockID)
			require.Equal(t, blockID, *c.BlockID)
			require.True(t, c.IsDiscount)
			require.True(t, c.CanBeNegative)
		}
	}
	require.True(t, found)
}

func TestAddRepeatableLineNumbersLabels(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, nil)

	// TOO-only pricing carries the repeatable transfer-ownership lines
	p, err := env.svc.AttachTransferOwnership(staffCtx(), domain.AttachTransferOwnershipRequest{
		QuoteID:   q.ID,
		Direction: templatedomain.DirectionExport,
	})
	require.NoError(t, err)
	require.Equal(t, templatedomain.AirExportTransferOwnership, p.TemplateCode)

	p, err = env.svc.AddLine(staffCtx(), domain.AddLineRequest{QuoteID: q.ID, Code: "TOO_TRANSPORT"})
	require.NoError(t, err)

	labels := []string{}
	for _, c := range p.Charges {
		if c.Code == "TOO_TRANSPORT" {
			labels = append(labels, c.Label)
		}
	}
	require.Equal(t, []string{"Transport", "Transport #2"}, labels)
}

func TestRemoveLine(t *testing.T) {
	env := setupPricingService(t)
	q := env.createQuote(t, templatedomain.ModeAir, nil)

	p, err := env.svc.Initialize(staffCtx(), domain.InitializeRequest{
		QuoteID:      q.ID,
		TemplateCode: templatedomain.AirExportLocal,
	})
	require.NoError(t, err)

	p, err = env.svc.AddLine(staffCtx(), domain.AddLineRequest{QuoteID: q.ID, Code: "SCREENING"})
	require.NoError(t, err)

	var screening, airfreight int64
	for _, c := range p.Charges {
		switch c.Code {
		case "SCREENING":
			screening = c.ID
		case "AIRFREIGHT":
			airfreight = c.ID
		}
	}

	_, err = env.svc.RemoveLine(staffCtx(), domain.RemoveLineRequest{QuoteID: q.ID, ChargeID: airfreight})
	require.ErrorIs(t, err, domain.ErrLineMandatory)

	_, err = env.svc.RemoveLine(staffCtx(), domain.RemoveLineRequest{QuoteID: q.ID, ChargeID: env.node.Generate().Int64()})
	require.ErrorIs(t, err, domain.ErrChargeNotFound)

	p, err = env.svc.RemoveLine(staffCtx(), domain.RemoveLineRequest{QuoteID: q.ID, ChargeID: screening})
	require.NoError(t, err)
	for _, c := range p.Charges {
		require.NotEqual(t, "SCREENING", c.Code)
	}
}
