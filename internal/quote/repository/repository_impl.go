package repository

import (
	"context"
	"time"

	"github.com/freightdesk/tariff/internal/quote/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, quote *domain.Quote) error {
	return db.WithContext(ctx).Create(quote).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Quote, error) {
	var q domain.Quote
	err := db.WithContext(ctx).Where("id = ?", id).First(&q).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, afterID int64, limit int) ([]*domain.Quote, error) {
	query := db.WithContext(ctx).Order("id DESC").Limit(limit + 1)
	if afterID > 0 {
		query = query.Where("id < ?", afterID)
	}

	var items []*domain.Quote
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ApplyPricingResult bumps the pricing version alongside the snapshot so a
// stale snapshot can never overwrite a newer one unnoticed.
func (r *repo) ApplyPricingResult(ctx context.Context, db *gorm.DB, id int64, result domain.PricingResult) error {
	return db.WithContext(ctx).Model(&domain.Quote{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"pricing_snapshot": result.Snapshot,
			"pricing_version":  gorm.Expr("pricing_version + 1"),
			"priced_at":        result.PricedAt,
			"priced_by":        result.PricedBy,
			"total_price":      result.TotalPrice,
			"currency":         result.Currency,
			"updated_at":       result.PricedAt,
		}).Error
}

func (r *repo) SetLock(ctx context.Context, db *gorm.DB, id int64, lockedAt time.Time, lockedBy int64, reason string) error {
	return db.WithContext(ctx).Model(&domain.Quote{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"pricing_locked_at":     lockedAt,
			"pricing_locked_by":     lockedBy,
			"pricing_locked_reason": reason,
			"updated_at":            lockedAt,
		}).Error
}

func (r *repo) ClearLock(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Model(&domain.Quote{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"pricing_locked_at":     nil,
			"pricing_locked_by":     nil,
			"pricing_locked_reason": nil,
			"updated_at":            time.Now().UTC(),
		}).Error
}
