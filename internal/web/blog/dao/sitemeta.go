package dao

import (
	"context"

	"github.com/Laisky/errors/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chandemahtab/blog-api/internal/web/blog/model"
)

// GetSiteMeta loads the singleton settings row.
func (d *Blog) GetSiteMeta(ctx context.Context) (*model.SiteMeta, error) {
	meta := new(model.SiteMeta)
	err := d.db.WithContext(ctx).First(meta, "id = ?", model.SiteMetaID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(model.ErrNotFound)
		}
		return nil, errors.Wrap(err, "load site meta")
	}

	return meta, nil
}

// UpsertSiteMeta creates or replaces the singleton settings row.
func (d *Blog) UpsertSiteMeta(ctx context.Context, meta *model.SiteMeta) error {
	meta.ID = model.SiteMetaID
	err := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(meta).Error
	if err != nil {
		return errors.Wrap(err, "upsert site meta")
	}

	return nil
}
