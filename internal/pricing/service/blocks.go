package service

import (
	"context"

	"github.com/freightdesk/tariff/internal/identity"
	"github.com/freightdesk/tariff/internal/pricing/domain"
	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AddContainerBlock attaches an add-on container block and replays the
// template's default lines into it. Only sea export scenarios support
// multiple blocks; container types cannot repeat.
func (s *Service) AddContainerBlock(ctx context.Context, req domain.AddBlockRequest) (*domain.Pricing, error) {
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

	p, err := s.pricing(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	if !domain.SupportsAddonBlocks(p.TemplateCode) {
		return nil, domain.ErrAddonNotSupported
	}
	if !domain.ValidContainerType(req.ContainerType) || req.ContainerQty <= 0 {
		return nil, domain.ErrContainerDetailRequired
	}
	for _, b := range p.Blocks {
		if b.ContainerType == req.ContainerType {
			return nil, domain.ErrDuplicateContainerType
		}
	}

	nextOrder := 20
	if len(p.Blocks) > 0 {
		maxOrder := 0
		for _, b := range p.Blocks {
			if b.SortOrder > maxOrder {
				maxOrder = b.SortOrder
			}
		}
		nextOrder = maxOrder + 10
	}

	tmpl, err := s.templates.Get(ctx, p.TemplateCode)
	if err != nil {
		return nil, err
	}
	lines := make([]templatedomain.TemplateLine, 0, len(tmpl.Lines))
	for _, l := range tmpl.Lines {
		if !l.IsDefault {
			continue
		}
		if domain.AddonBlockLineExcluded(p.TemplateCode, l.Code) {
			continue
		}
		lines = append(lines, l)
	}

	now := s.clock.Now()
	block := &domain.ContainerBlock{
		ID:            s.genID.Generate().Int64(),
		PricingID:     p.ID,
		ContainerType: req.ContainerType,
		ContainerQty:  req.ContainerQty,
		IsAddon:       true,
		SortOrder:     nextOrder,
		CreatedAt:     now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.CreateBlock(ctx, tx, block); err != nil {
			return err
		}
		return s.repo.CreateCharges(ctx, tx, s.chargesFromLines(p.ID, &block.ID, lines, now))
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("container block added",
		zap.Int64("quote_id", q.ID),
		zap.String("container_type", string(req.ContainerType)),
		zap.Int("container_qty", req.ContainerQty),
	)
	return s.pricing(ctx, q.ID)
}
