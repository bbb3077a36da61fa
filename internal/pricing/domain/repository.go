package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, pricing *Pricing) error
	// FindByQuoteID loads the pricing with blocks and charges in sort order,
	// nil when the quote has no pricing.
	FindByQuoteID(ctx context.Context, db *gorm.DB, quoteID int64) (*Pricing, error)
	// DeleteByQuoteID removes a pricing bottom-up: charges, blocks, header.
	DeleteByQuoteID(ctx context.Context, db *gorm.DB, quoteID int64) error
	CreateBlock(ctx context.Context, db *gorm.DB, block *ContainerBlock) error
	CreateCharges(ctx context.Context, db *gorm.DB, charges []Charge) error
	UpdateCharge(ctx context.Context, db *gorm.DB, charge *Charge) error
	DeleteCharge(ctx context.Context, db *gorm.DB, pricingID, chargeID int64) error
}
