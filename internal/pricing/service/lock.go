package service

import (
	"context"
	"strings"

	"github.com/freightdesk/tariff/internal/identity"
	"github.com/freightdesk/tariff/internal/pricing/domain"
	quotedomain "github.com/freightdesk/tariff/internal/quote/domain"
	"go.uber.org/zap"
)

// assertEditable rejects pricing mutations on a locked quote. Admins bypass
// the lock entirely.
func assertEditable(q *quotedomain.Quote, actor identity.Actor) error {
	if actor.IsAdmin() {
		return nil
	}
	if q.PricingLockedAt != nil {
		return &domain.PricingLockedError{LockedAt: *q.PricingLockedAt}
	}
	return nil
}

func (s *Service) Lock(ctx context.Context, req domain.LockRequest) (*domain.LockState, error) {
	actor, ok := identity.ActorFromContext(ctx)
	if !ok {
		return nil, domain.ErrActorRequired
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, domain.ErrLockReasonRequired
	}

	q, err := s.quote(ctx, req.QuoteID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if err := s.quotes.SetLock(ctx, s.db, q.ID, now, actor.ID, reason); err != nil {
		return nil, err
	}

	s.log.Info("pricing locked",
		zap.Int64("quote_id", q.ID),
		zap.Int64("locked_by", actor.ID),
		zap.String("reason", reason),
	)
	return s.LockState(ctx, q.ID)
}

// Unlock clears the pricing lock. Admin only.
func (s *Service) Unlock(ctx context.Context, quoteID int64) (*domain.LockState, error) {
	actor, ok := identity.ActorFromContext(ctx)
	if !ok {
		return nil, domain.ErrActorRequired
	}
	if !actor.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}

	q, err := s.quote(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if err := s.quotes.ClearLock(ctx, s.db, q.ID); err != nil {
		return nil, err
	}

	s.log.Info("pricing unlocked",
		zap.Int64("quote_id", q.ID),
		zap.Int64("unlocked_by", actor.ID),
	)
	return s.LockState(ctx, q.ID)
}

func (s *Service) LockState(ctx context.Context, quoteID int64) (*domain.LockState, error) {
	q, err := s.quote(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	return &domain.LockState{
		Locked:   q.PricingLockedAt != nil,
		LockedAt: q.PricingLockedAt,
		LockedBy: q.PricingLockedBy,
		Reason:   q.PricingLockedReason,
	}, nil
}
