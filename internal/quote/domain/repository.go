package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("quote_not_found")

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, quote *Quote) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Quote, error)
	// List pages newest-first. afterID narrows to quotes older than the
	// cursor; limit+1 rows are returned so callers can detect another page.
	List(ctx context.Context, db *gorm.DB, afterID int64, limit int) ([]*Quote, error)
	ApplyPricingResult(ctx context.Context, db *gorm.DB, id int64, result PricingResult) error
	SetLock(ctx context.Context, db *gorm.DB, id int64, lockedAt time.Time, lockedBy int64, reason string) error
	ClearLock(ctx context.Context, db *gorm.DB, id int64) error
}
