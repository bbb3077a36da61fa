package repository

import (
	"context"

	"github.com/freightdesk/tariff/internal/template/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// Upsert refreshes a catalog template in place. Lines are matched by code so
// catalog updates never churn line IDs referenced by existing pricings.
func (r *repo) Upsert(ctx context.Context, db *gorm.DB, template *domain.Template, lines []domain.TemplateLine) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "mode", "direction", "updated_at",
			}),
		}).Create(template).Error; err != nil {
			return err
		}

		var existing domain.Template
		if err := tx.Where("code = ?", template.Code).First(&existing).Error; err != nil {
			return err
		}
		template.ID = existing.ID

		for i := range lines {
			lines[i].TemplateID = existing.ID
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "template_id"}, {Name: "code"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"label", "charge_group", "qty_basis", "sort_order",
					"is_default", "is_optional", "is_labelling",
					"is_discount", "can_be_negative", "allow_multiple",
				}),
			}).Create(&lines[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repo) FindByCode(ctx context.Context, db *gorm.DB, code domain.TemplateCode) (*domain.Template, error) {
	var t domain.Template
	err := db.WithContext(ctx).
		Preload("Lines", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("sort_order ASC")
		}).
		Where("code = ?", code).
		First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repo) FindByMode(ctx context.Context, db *gorm.DB, mode domain.ShipmentMode) ([]domain.Template, error) {
	var items []domain.Template
	err := db.WithContext(ctx).
		Where("mode = ?", mode).
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindLines(ctx context.Context, db *gorm.DB, templateID int64) ([]domain.TemplateLine, error) {
	var items []domain.TemplateLine
	err := db.WithContext(ctx).
		Where("template_id = ?", templateID).
		Order("sort_order ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindLineByCode(ctx context.Context, db *gorm.DB, templateID int64, code string) (*domain.TemplateLine, error) {
	var l domain.TemplateLine
	err := db.WithContext(ctx).
		Where("template_id = ? AND code = ?", templateID, code).
		First(&l).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}
