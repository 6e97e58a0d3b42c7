package dao

import (
	"context"

	"github.com/Laisky/errors/v2"

	"github.com/chandemahtab/blog-api/internal/web/blog/dto"
	"github.com/chandemahtab/blog-api/internal/web/blog/model"
)

// CreateComment inserts a new comment row.
func (d *Blog) CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := d.db.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrap(err, "insert comment")
	}

	return nil
}

// ListApprovedComments returns the approved comments of a post, newest first.
func (d *Blog) ListApprovedComments(ctx context.Context, postID string) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := d.db.WithContext(ctx).
		Where("post_id = ? AND approved = ?", postID, true).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list comments of post %q", postID)
	}

	return comments, nil
}

// ListAllComments returns every comment joined with its post slug,
// newest first, for the moderation panel.
func (d *Blog) ListAllComments(ctx context.Context) ([]*dto.AdminComment, error) {
	var out []*dto.AdminComment
	err := d.db.WithContext(ctx).Model(&model.Comment{}).
		Select("comments.*, posts.slug AS post_slug").
		Joins("JOIN posts ON posts.id = comments.post_id").
		Order("comments.created_at DESC").
		Scan(&out).Error
	if err != nil {
		return nil, errors.Wrap(err, "list comments")
	}

	for _, comment := range out {
		comment.Email = comment.Comment.Email
	}

	return out, nil
}

// ApproveComment marks the comment as publicly visible.
func (d *Blog) ApproveComment(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", id).
		Update("approved", true)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "approve comment %q", id)
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(model.ErrNotFound)
	}

	return nil
}

// DeleteComment removes the comment.
func (d *Blog) DeleteComment(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&model.Comment{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "delete comment %q", id)
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(model.ErrNotFound)
	}

	return nil
}

// PostExists reports whether the post id references an existing post.
func (d *Blog) PostExists(ctx context.Context, id string) (bool, error) {
	var n int64
	if err := d.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Count(&n).Error; err != nil {
		return false, errors.Wrapf(err, "count post %q", id)
	}

	return n > 0, nil
}
