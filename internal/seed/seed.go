// Package seed loads the built-in template catalog into the database on
// startup so pricing works out of the box on a fresh install.
package seed

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/freightdesk/tariff/internal/template/catalog"
	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	templaterepo "github.com/freightdesk/tariff/internal/template/repository"
	"gorm.io/gorm"
)

// EnsureTemplateCatalog upserts every built-in pricing template. Existing
// rows keep their ids; only the definition columns are refreshed.
func EnsureTemplateCatalog(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	repo := templaterepo.Provide()

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range catalog.Templates() {
			tmpl := &templatedomain.Template{
				ID:        node.Generate().Int64(),
				Code:      entry.Code,
				Name:      entry.Name,
				Mode:      entry.Mode,
				Direction: entry.Direction,
			}
			lines := make([]templatedomain.TemplateLine, len(entry.Lines))
			copy(lines, entry.Lines)
			for i := range lines {
				lines[i].ID = node.Generate().Int64()
			}
			if err := repo.Upsert(ctx, tx, tmpl, lines); err != nil {
				return err
			}
		}
		return nil
	})
}
