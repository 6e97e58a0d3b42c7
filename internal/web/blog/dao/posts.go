package dao

import (
	"context"
	"strings"

	"github.com/Laisky/errors/v2"
	"gorm.io/gorm"

	"github.com/chandemahtab/blog-api/internal/web/blog/dto"
	"github.com/chandemahtab/blog-api/internal/web/blog/model"
)

// CreatePost inserts a new post row.
func (d *Blog) CreatePost(ctx context.Context, post *model.Post) error {
	if err := d.db.WithContext(ctx).Create(post).Error; err != nil {
		return errors.Wrap(err, "insert post")
	}

	return nil
}

// SavePost persists every column of an existing post.
func (d *Blog) SavePost(ctx context.Context, post *model.Post) error {
	if err := d.db.WithContext(ctx).Save(post).Error; err != nil {
		return errors.Wrapf(err, "update post %q", post.ID)
	}

	return nil
}

// DeletePost removes the post and its comments.
func (d *Blog) DeletePost(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return errors.Wrapf(err, "delete comments of post %q", id)
		}

		result := tx.Delete(&model.Post{}, "id = ?", id)
		if result.Error != nil {
			return errors.Wrapf(result.Error, "delete post %q", id)
		}
		if result.RowsAffected == 0 {
			return errors.WithStack(model.ErrNotFound)
		}

		return nil
	})
}

// GetPostByID loads a post regardless of publication state.
func (d *Blog) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	post := new(model.Post)
	if err := d.db.WithContext(ctx).First(post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(model.ErrNotFound)
		}
		return nil, errors.Wrapf(err, "load post %q", id)
	}

	return post, nil
}

// GetPublishedPostBySlug loads a published post by its slug.
func (d *Blog) GetPublishedPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	post := new(model.Post)
	err := d.db.WithContext(ctx).
		First(post, "slug = ? AND published = ?", slug, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(model.ErrNotFound)
		}
		return nil, errors.Wrapf(err, "load post by slug %q", slug)
	}

	return post, nil
}

// SlugExists reports whether another post already uses the slug.
// excludeID skips the post currently being edited.
func (d *Blog) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	query := d.db.WithContext(ctx).Model(&model.Post{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var n int64
	if err := query.Count(&n).Error; err != nil {
		return false, errors.Wrapf(err, "count slug %q", slug)
	}

	return n > 0, nil
}

// ListPublishedPosts returns published posts, newest first.
func (d *Blog) ListPublishedPosts(ctx context.Context, cfg *dto.PostCfg) ([]*model.Post, error) {
	query := d.db.WithContext(ctx).
		Where("published = ?", true).
		Order("published_at DESC")

	if cfg.Tag != "" {
		query = query.Where("lower(tags) LIKE ?", "%"+strings.ToLower(cfg.Tag)+"%")
	}
	if cfg.Size > 0 {
		query = query.Offset(cfg.Page * cfg.Size).Limit(cfg.Size)
	}

	var posts []*model.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, errors.Wrap(err, "list published posts")
	}

	return posts, nil
}

// ListAllPosts returns every post with its comment count, newest first.
func (d *Blog) ListAllPosts(ctx context.Context) ([]*dto.PostWithCommentCount, error) {
	var posts []*model.Post
	if err := d.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, errors.Wrap(err, "list posts")
	}

	counts, err := d.commentCountsByPost(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.PostWithCommentCount, 0, len(posts))
	for _, post := range posts {
		out = append(out, &dto.PostWithCommentCount{
			Post:         *post,
			CommentCount: counts[post.ID],
		})
	}

	return out, nil
}

func (d *Blog) commentCountsByPost(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		PostID string
		N      int64
	}
	if err := d.db.WithContext(ctx).Model(&model.Comment{}).
		Select("post_id, count(*) AS n").
		Group("post_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "count comments per post")
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.PostID] = row.N
	}

	return counts, nil
}

// SearchPosts matches the query as a case-insensitive substring across
// the bilingual title/summary fields, the content, and the tag string
// of published posts.
func (d *Blog) SearchPosts(ctx context.Context, query string) ([]*model.Post, error) {
	like := "%" + strings.ToLower(query) + "%"

	var posts []*model.Post
	err := d.db.WithContext(ctx).
		Where("published = ?", true).
		Where(`lower(title_en) LIKE ?
			OR lower(title_ur) LIKE ?
			OR lower(summary_en) LIKE ?
			OR lower(summary_ur) LIKE ?
			OR lower(content) LIKE ?
			OR lower(tags) LIKE ?`,
			like, like, like, like, like, like).
		Order("published_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, errors.Wrapf(err, "search posts %q", query)
	}

	return posts, nil
}
