package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/freightdesk/tariff/internal/identity"
	"github.com/freightdesk/tariff/internal/pricing/domain"
	quotedomain "github.com/freightdesk/tariff/internal/quote/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type snapshotBlock struct {
	ID            int64                `json:"id,string"`
	ContainerType domain.ContainerType `json:"containerType"`
	ContainerQty  int                  `json:"containerQty"`
	IsAddon       bool                 `json:"isAddon"`
	Order         int                  `json:"order"`
}

type snapshotCharge struct {
	Code      string              `json:"code"`
	Label     string              `json:"label"`
	Group     string              `json:"group"`
	QtyBasis  string              `json:"qtyBasis"`
	Qty       decimal.Decimal     `json:"qty"`
	BuyRate   decimal.Decimal     `json:"buyRate"`
	SellRate  decimal.Decimal     `json:"sellRate"`
	TotalSell decimal.Decimal     `json:"totalSell"`
	Margin    decimal.NullDecimal `json:"margin"`
	BlockID   *int64              `json:"blockId,string"`
}

type snapshotDocument struct {
	Mode         string           `json:"mode"`
	Direction    string           `json:"direction"`
	TemplateCode string           `json:"templateCode"`
	Currency     string           `json:"currency"`
	Blocks       []snapshotBlock  `json:"blocks"`
	Charges      []snapshotCharge `json:"charges"`
	Totals       snapshotTotals   `json:"totals"`
	CreatedAt    time.Time        `json:"createdAt"`
}

type snapshotTotals struct {
	TotalSell decimal.Decimal `json:"totalSell"`
}

// Snapshot freezes the current pricing as an immutable document on the quote
// and bumps its pricing version. Locked pricings may still be snapshotted.
func (s *Service) Snapshot(ctx context.Context, quoteID int64) (*domain.SnapshotResponse, error) {
	actor, ok := identity.ActorFromContext(ctx)
	if !ok {
		return nil, domain.ErrActorRequired
	}

	q, err := s.quote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	p, err := s.pricing(ctx, q.ID)
	if err != nil {
		return nil, err
	}

	totalSell := decimal.Zero
	for _, c := range p.Charges {
		totalSell = totalSell.Add(c.TotalSell)
	}

	now := s.clock.Now()
	doc := snapshotDocument{
		Mode:         string(p.Mode),
		Direction:    string(p.Direction),
		TemplateCode: string(p.TemplateCode),
		Currency:     p.Currency,
		Blocks:       make([]snapshotBlock, 0, len(p.Blocks)),
		Charges:      make([]snapshotCharge, 0, len(p.Charges)),
		Totals:       snapshotTotals{TotalSell: totalSell},
		CreatedAt:    now,
	}
	for _, b := range p.Blocks {
		doc.Blocks = append(doc.Blocks, snapshotBlock{
			ID:            b.ID,
			ContainerType: b.ContainerType,
			ContainerQty:  b.ContainerQty,
			IsAddon:       b.IsAddon,
			Order:         b.SortOrder,
		})
	}
	for _, c := range p.Charges {
		doc.Charges = append(doc.Charges, snapshotCharge{
			Code:      c.Code,
			Label:     c.Label,
			Group:     string(c.Group),
			QtyBasis:  string(c.QtyBasis),
			Qty:       c.Qty,
			BuyRate:   c.BuyRate,
			SellRate:  c.SellRate,
			TotalSell: c.TotalSell,
			Margin:    c.Margin,
			BlockID:   c.BlockID,
		})
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	err = s.quotes.ApplyPricingResult(ctx, s.db, q.ID, quotedomain.PricingResult{
		Snapshot:   datatypes.JSON(raw),
		TotalPrice: totalSell,
		Currency:   p.Currency,
		PricedAt:   now,
		PricedBy:   actor.ID,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("pricing snapshot saved",
		zap.Int64("quote_id", q.ID),
		zap.String("total_sell", totalSell.String()),
		zap.Int("pricing_version", q.PricingVersion+1),
	)
	return &domain.SnapshotResponse{
		QuoteID:        q.ID,
		Mode:           p.Mode,
		PricingVersion: q.PricingVersion + 1,
		TotalSell:      totalSell,
		Currency:       p.Currency,
		PricedAt:       now,
	}, nil
}
