package repository

import (
	"context"

	"github.com/freightdesk/tariff/internal/pricing/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, pricing *domain.Pricing) error {
	return db.WithContext(ctx).Create(pricing).Error
}

func (r *repo) FindByQuoteID(ctx context.Context, db *gorm.DB, quoteID int64) (*domain.Pricing, error) {
	var p domain.Pricing
	err := db.WithContext(ctx).
		Preload("Blocks", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("sort_order ASC")
		}).
		Preload("Charges", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("sort_order ASC, id ASC")
		}).
		Where("quote_id = ?", quoteID).
		First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repo) DeleteByQuoteID(ctx context.Context, db *gorm.DB, quoteID int64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p domain.Pricing
		err := tx.Where("quote_id = ?", quoteID).First(&p).Error
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Where("pricing_id = ?", p.ID).Delete(&domain.Charge{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pricing_id = ?", p.ID).Delete(&domain.ContainerBlock{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Pricing{}, p.ID).Error
	})
}

func (r *repo) CreateBlock(ctx context.Context, db *gorm.DB, block *domain.ContainerBlock) error {
	return db.WithContext(ctx).Create(block).Error
}

func (r *repo) CreateCharges(ctx context.Context, db *gorm.DB, charges []domain.Charge) error {
	if len(charges) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&charges).Error
}

func (r *repo) UpdateCharge(ctx context.Context, db *gorm.DB, charge *domain.Charge) error {
	return db.WithContext(ctx).Model(&domain.Charge{}).
		Where("id = ? AND pricing_id = ?", charge.ID, charge.PricingID).
		Updates(map[string]interface{}{
			"buy_rate":   charge.BuyRate,
			"sell_rate":  charge.SellRate,
			"qty":        charge.Qty,
			"total_sell": charge.TotalSell,
			"margin":     charge.Margin,
			"updated_at": charge.UpdatedAt,
		}).Error
}

func (r *repo) DeleteCharge(ctx context.Context, db *gorm.DB, pricingID, chargeID int64) error {
	return db.WithContext(ctx).
		Where("id = ? AND pricing_id = ?", chargeID, pricingID).
		Delete(&domain.Charge{}).Error
}
