package service

import (
	"context"

	"github.com/freightdesk/tariff/internal/identity"
	"github.com/freightdesk/tariff/internal/pricing/domain"
	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AttachTransferOwnership overlays the transfer-of-ownership charge set onto
// the quote's pricing. Without a pricing it starts a TOO-only sheet; with
// one it appends the TOO lines once, never per container block.
func (s *Service) AttachTransferOwnership(ctx context.Context, req domain.AttachTransferOwnershipRequest) (*domain.Pricing, error) {
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

	existing, err := s.repo.FindByQuoteID(ctx, s.db, q.ID)
	if err != nil {
		return nil, err
	}

	direction := req.Direction
	if existing != nil {
		direction = existing.Direction
	}
	if direction != templatedomain.DirectionExport && direction != templatedomain.DirectionImport {
		return nil, domain.ErrDirectionRequired
	}

	tooCode := templatedomain.TransferOwnershipCode(q.Mode, direction)
	tooTmpl, err := s.templates.Get(ctx, tooCode)
	if err != nil {
		return nil, err
	}

	defaults := make([]templatedomain.TemplateLine, 0, len(tooTmpl.Lines))
	for _, l := range tooTmpl.Lines {
		if l.IsDefault {
			defaults = append(defaults, l)
		}
	}

	now := s.clock.Now()

	if existing != nil {
		for _, c := range existing.Charges {
			if c.Group == templatedomain.GroupTransferOwnership {
				return nil, domain.ErrTransferOwnershipExists
			}
		}
		if err := s.repo.CreateCharges(ctx, s.db, s.chargesFromLines(existing.ID, nil, defaults, now)); err != nil {
			return nil, err
		}
	} else {
		pricing := &domain.Pricing{
			ID:           s.genID.Generate().Int64(),
			QuoteID:      q.ID,
			TemplateID:   tooTmpl.ID,
			TemplateCode: tooTmpl.Code,
			Mode:         q.Mode,
			Direction:    direction,
			Currency:     s.cfg.Currency(),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := s.repo.Create(ctx, tx, pricing); err != nil {
				return err
			}
			return s.repo.CreateCharges(ctx, tx, s.chargesFromLines(pricing.ID, nil, defaults, now))
		})
		if err != nil {
			return nil, err
		}
	}

	s.log.Info("transfer ownership attached",
		zap.Int64("quote_id", q.ID),
		zap.String("template_code", string(tooCode)),
	)
	return s.pricing(ctx, q.ID)
}
