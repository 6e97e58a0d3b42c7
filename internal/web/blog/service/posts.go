package service

import (
	"context"
	"strings"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"github.com/Laisky/zap"

	"github.com/chandemahtab/blog-api/internal/web/blog/dto"
	"github.com/chandemahtab/blog-api/internal/web/blog/model"
)

const maxPostPageSize = 200

// NewPost creates a post from the admin form, deriving a unique slug
// from the English title.
func (s *Blog) NewPost(ctx context.Context, input *dto.PostInput) (*model.Post, error) {
	titleEn := strings.TrimSpace(input.TitleEn)
	if titleEn == "" || strings.TrimSpace(input.Content) == "" {
		return nil, model.NewValidationError("Title (English) and content are required")
	}

	slug, err := s.uniqueSlug(ctx, Slugify(titleEn), "")
	if err != nil {
		return nil, errors.Wrap(err, "generate slug")
	}

	post := &model.Post{
		Slug:       slug,
		TitleEn:    titleEn,
		TitleUr:    strings.TrimSpace(input.TitleUr),
		SummaryEn:  strings.TrimSpace(input.SummaryEn),
		SummaryUr:  strings.TrimSpace(input.SummaryUr),
		Content:    input.Content,
		Tags:       input.Tags,
		CoverImage: input.CoverImage,
		Published:  input.Published,
	}
	if post.Published {
		now := gutils.Clock.GetUTCNow()
		post.PublishedAt = &now
	}

	if err = s.dao.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("new post created",
		zap.String("post_id", post.ID),
		zap.String("slug", post.Slug),
		zap.Bool("published", post.Published))

	return post, nil
}

// UpdatePost applies the admin form to an existing post. The slug is
// regenerated only when the English title changed; the first publish
// stamps PublishedAt once and unpublishing keeps it.
func (s *Blog) UpdatePost(ctx context.Context, id string, input *dto.PostInput) (*model.Post, error) {
	titleEn := strings.TrimSpace(input.TitleEn)
	if titleEn == "" || strings.TrimSpace(input.Content) == "" {
		return nil, model.NewValidationError("Title and content are required")
	}

	post, err := s.dao.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if titleEn != post.TitleEn {
		slug, err := s.uniqueSlug(ctx, Slugify(titleEn), post.ID)
		if err != nil {
			return nil, errors.Wrap(err, "generate slug")
		}
		post.Slug = slug
	}

	post.TitleEn = titleEn
	post.TitleUr = strings.TrimSpace(input.TitleUr)
	post.SummaryEn = strings.TrimSpace(input.SummaryEn)
	post.SummaryUr = strings.TrimSpace(input.SummaryUr)
	post.Content = input.Content
	post.Tags = input.Tags
	post.CoverImage = input.CoverImage
	post.Published = input.Published
	if post.Published && post.PublishedAt == nil {
		now := gutils.Clock.GetUTCNow()
		post.PublishedAt = &now
	}

	if err = s.dao.SavePost(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post updated",
		zap.String("post_id", post.ID),
		zap.String("slug", post.Slug))

	return post, nil
}

// DeletePost removes a post and its comments.
func (s *Blog) DeletePost(ctx context.Context, id string) error {
	if err := s.dao.DeletePost(ctx, id); err != nil {
		return err
	}

	s.logger.Info("post deleted", zap.String("post_id", id))
	return nil
}

// LoadPost returns an unfiltered post for the admin edit form.
func (s *Blog) LoadPost(ctx context.Context, id string) (*model.Post, error) {
	return s.dao.GetPostByID(ctx, id)
}

// LoadPublishedPost returns a published post by slug with its content
// rendered for display.
func (s *Blog) LoadPublishedPost(ctx context.Context, slug string) (*model.Post, error) {
	post, err := s.dao.GetPublishedPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	post.Content = RenderContent(post.Content)
	return post, nil
}

// LoadPublishedPosts returns a page of published posts, newest first.
func (s *Blog) LoadPublishedPosts(ctx context.Context, cfg *dto.PostCfg) ([]*model.Post, error) {
	if cfg.Page < 0 || cfg.Size < 0 || cfg.Size > maxPostPageSize {
		return nil, model.NewValidationError("page must be non-negative and size within [0~%d]", maxPostPageSize)
	}

	return s.dao.ListPublishedPosts(ctx, cfg)
}

// AdminListPosts returns every post with comment counts for the dashboard.
func (s *Blog) AdminListPosts(ctx context.Context) ([]*dto.PostWithCommentCount, error) {
	return s.dao.ListAllPosts(ctx)
}

// SearchPosts matches query as a substring across the bilingual fields
// and tags of published posts.
func (s *Blog) SearchPosts(ctx context.Context, query string) (*dto.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, model.NewValidationError("Search query is required")
	}

	posts, err := s.dao.SearchPosts(ctx, query)
	if err != nil {
		return nil, err
	}

	return &dto.SearchResult{
		Query:   query,
		Results: posts,
		Count:   len(posts),
	}, nil
}
