package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Upsert(ctx context.Context, db *gorm.DB, template *Template, lines []TemplateLine) error
	FindByCode(ctx context.Context, db *gorm.DB, code TemplateCode) (*Template, error)
	FindByMode(ctx context.Context, db *gorm.DB, mode ShipmentMode) ([]Template, error)
	FindLines(ctx context.Context, db *gorm.DB, templateID int64) ([]TemplateLine, error)
	FindLineByCode(ctx context.Context, db *gorm.DB, templateID int64, code string) (*TemplateLine, error)
}
