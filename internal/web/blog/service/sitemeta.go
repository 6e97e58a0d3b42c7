package service

import (
	"context"

	"github.com/Laisky/errors/v2"

	"github.com/chandemahtab/blog-api/internal/web/blog/dto"
	"github.com/chandemahtab/blog-api/internal/web/blog/model"
)

// LoadSiteMeta returns the singleton settings row, or an empty record
// when none has been saved yet.
func (s *Blog) LoadSiteMeta(ctx context.Context) (*model.SiteMeta, error) {
	meta, err := s.dao.GetSiteMeta(ctx)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.SiteMeta{ID: model.SiteMetaID}, nil
		}
		return nil, err
	}

	return meta, nil
}

// SaveSiteMeta upserts the singleton settings row from the admin form.
func (s *Blog) SaveSiteMeta(ctx context.Context, input *dto.SiteMetaInput) (*model.SiteMeta, error) {
	meta := &model.SiteMeta{
		ID:        model.SiteMetaID,
		AboutEn:   input.AboutEn,
		AboutUr:   input.AboutUr,
		Email:     input.Email,
		Phone:     input.Phone,
		Facebook:  input.Facebook,
		Twitter:   input.Twitter,
		Instagram: input.Instagram,
		Linkedin:  input.Linkedin,
		Youtube:   input.Youtube,
	}

	if err := s.dao.UpsertSiteMeta(ctx, meta); err != nil {
		return nil, err
	}

	return meta, nil
}
