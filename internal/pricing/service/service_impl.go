package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/freightdesk/tariff/internal/clock"
	"github.com/freightdesk/tariff/internal/config"
	"github.com/freightdesk/tariff/internal/identity"
	"github.com/freightdesk/tariff/internal/pricing/calc"
	"github.com/freightdesk/tariff/internal/pricing/domain"
	quotedomain "github.com/freightdesk/tariff/internal/quote/domain"
	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Repo      domain.Repository
	Quotes    quotedomain.Repository
	Templates templatedomain.Service
	Pricing   *config.PricingConfigHolder
	Clock     clock.Clock
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	repo      domain.Repository
	quotes    quotedomain.Repository
	templates templatedomain.Service
	cfg       *config.PricingConfigHolder
	clock     clock.Clock
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("pricing.service"),
		genID:     p.GenID,
		repo:      p.Repo,
		quotes:    p.Quotes,
		templates: p.Templates,
		cfg:       p.Pricing,
		clock:     p.Clock,
	}
}

func (s *Service) quote(ctx context.Context, quoteID int64) (*quotedomain.Quote, error) {
	q, err := s.quotes.FindByID(ctx, s.db, quoteID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, quotedomain.ErrNotFound
	}
	return q, nil
}

func (s *Service) pricing(ctx context.Context, quoteID int64) (*domain.Pricing, error) {
	p, err := s.repo.FindByQuoteID(ctx, s.db, quoteID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrPricingNotFound
	}
	return p, nil
}

func cargoFromQuote(q *quotedomain.Quote) calc.Cargo {
	return calc.Cargo{
		Pieces:             q.Pieces,
		WeightKg:           q.WeightKg,
		ChargeableWeightKg: q.ChargeableWeightKg,
		VolumeCbm:          q.VolumeCbm,
		LengthCm:           q.LengthCm,
		WidthCm:            q.WidthCm,
		HeightCm:           q.HeightCm,
	}
}

// chargesFromLines materializes template lines as unpriced charges. Rates
// start at zero so ops can fill them in; labelling lines carry no margin.
func (s *Service) chargesFromLines(pricingID int64, blockID *int64, lines []templatedomain.TemplateLine, now time.Time) []domain.Charge {
	charges := make([]domain.Charge, 0, len(lines))
	for _, l := range lines {
		margin := decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}
		if l.IsLabelling {
			margin = decimal.NullDecimal{}
		}
		charges = append(charges, domain.Charge{
			ID:            s.genID.Generate().Int64(),
			PricingID:     pricingID,
			BlockID:       blockID,
			Code:          l.Code,
			Label:         l.Label,
			Group:         l.Group,
			QtyBasis:      l.QtyBasis,
			SortOrder:     l.SortOrder,
			IsLabelling:   l.IsLabelling,
			IsDiscount:    l.IsDiscount,
			CanBeNegative: l.CanBeNegative,
			BuyRate:       decimal.Zero,
			SellRate:      decimal.Zero,
			Qty:           decimal.NewFromInt(1),
			TotalSell:     decimal.Zero,
			Margin:        margin,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return charges
}

func (s *Service) Initialize(ctx context.Context, req domain.InitializeRequest) (*domain.Pricing, error) {
	actor, ok := identity.ActorFromContext(ctx)
	if !ok {
		return nil, domain.ErrActorRequired
	}

	q, err := s.quote(ctx, req.QuoteID)
	if err != nil {
		return nil, err
	}
	if err := assertEditable(q, actor); err != nil {
		return nil, err
	}

	tmpl, err := s.templates.Get(ctx, req.TemplateCode)
	if err != nil {
		return nil, err
	}
	if tmpl.Mode != q.Mode {
		return nil, domain.ErrTemplateModeMismatch
	}

	usesBlocks := domain.UsesContainerBlocks(tmpl.Code)
	if usesBlocks {
		if !domain.ValidContainerType(req.ContainerType) || req.ContainerQty <= 0 {
			return nil, domain.ErrContainerDetailRequired
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = s.cfg.Currency()
	}

	now := s.clock.Now()
	pricing := &domain.Pricing{
		ID:           s.genID.Generate().Int64(),
		QuoteID:      q.ID,
		TemplateID:   tmpl.ID,
		TemplateCode: tmpl.Code,
		Mode:         tmpl.Mode,
		Direction:    tmpl.Direction,
		Currency:     currency,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	defaults := make([]templatedomain.TemplateLine, 0, len(tmpl.Lines))
	for _, l := range tmpl.Lines {
		if l.IsDefault {
			defaults = append(defaults, l)
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.DeleteByQuoteID(ctx, tx, q.ID); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, tx, pricing); err != nil {
			return err
		}

		var blockID *int64
		if usesBlocks {
			block := &domain.ContainerBlock{
				ID:            s.genID.Generate().Int64(),
				PricingID:     pricing.ID,
				ContainerType: req.ContainerType,
				ContainerQty:  req.ContainerQty,
				IsAddon:       false,
				SortOrder:     10,
				CreatedAt:     now,
			}
			if err := s.repo.CreateBlock(ctx, tx, block); err != nil {
				return err
			}
			blockID = &block.ID
		}

		return s.repo.CreateCharges(ctx, tx, s.chargesFromLines(pricing.ID, blockID, defaults, now))
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("pricing initialized",
		zap.Int64("quote_id", q.ID),
		zap.String("template_code", string(tmpl.Code)),
	)
	return s.pricing(ctx, q.ID)
}

func (s *Service) Get(ctx context.Context, quoteID int64) (*domain.Pricing, error) {
	if _, err := s.quote(ctx, quoteID); err != nil {
		return nil, err
	}
	return s.pricing(ctx, quoteID)
}

func (s *Service) ListBlocks(ctx context.Context, quoteID int64) ([]domain.ContainerBlock, error) {
	p, err := s.pricing(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	return p.Blocks, nil
}

// AddonCandidates returns the optional lines of the pricing's template that
// are not priced yet. Repeatable lines always remain available.
func (s *Service) AddonCandidates(ctx context.Context, quoteID int64) ([]templatedomain.AddonResponse, error) {
	p, err := s.pricing(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	tmpl, err := s.templates.Get(ctx, p.TemplateCode)
	if err != nil {
		return nil, err
	}

	priced := make(map[string]bool, len(p.Charges))
	for _, c := range p.Charges {
		priced[c.Code] = true
	}

	candidates := make([]templatedomain.AddonResponse, 0)
	for _, l := range tmpl.Lines {
		if !l.IsOptional && !l.AllowMultiple {
			continue
		}
		if priced[l.Code] && !l.AllowMultiple {
			continue
		}
		candidates = append(candidates, templatedomain.AddonResponse{
			Code:     l.Code,
			Label:    l.Label,
			Group:    l.Group,
			QtyBasis: l.QtyBasis,
		})
	}
	return candidates, nil
}
