package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/chandemahtab/blog-api/internal/web/blog/dto"
	"github.com/chandemahtab/blog-api/internal/web/blog/model"
)

const (
	minCommentNameLen    = 2
	minCommentContentLen = 10
)

// CreateComment runs the anti-spam pipeline and persists the comment.
// Every gate is hard: the first failure aborts with a user-facing
// validation error, except the AI moderation call, which only decides
// the approved flag and never blocks submission.
func (s *Blog) CreateComment(ctx context.Context, req *dto.NewComment, clientAddr string) (*model.Comment, error) {
	if req.PostID == "" || strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, model.NewValidationError("Post ID, name, and content are required")
	}

	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) < minCommentNameLen {
		return nil, model.NewValidationError("Name must be at least %d characters long", minCommentNameLen)
	}

	content := strings.TrimSpace(req.Content)
	if utf8.RuneCountInString(content) < minCommentContentLen {
		return nil, model.NewValidationError("Comment must be at least %d characters long", minCommentContentLen)
	}

	email := strings.TrimSpace(req.Email)
	if email != "" && !isValidEmail(email) {
		return nil, model.NewValidationError("Please provide a valid email address")
	}

	exists, err := s.dao.PostExists(ctx, req.PostID)
	if err != nil {
		return nil, errors.Wrap(err, "check post existence")
	}
	if !exists {
		return nil, errors.WithStack(model.ErrNotFound)
	}

	ipHash := HashAddress(clientAddr)
	allowed, err := s.limiter.Allow(ctx, ipHash)
	if err != nil {
		return nil, errors.Wrap(err, "check rate limit")
	}
	if !allowed {
		return nil, errors.WithStack(model.ErrRateLimited)
	}

	if countURLs(content) > 1 {
		return nil, model.NewValidationError("Comments with multiple links are not allowed")
	}

	if containsBadWord(content, s.badWords) || containsBadWord(name, s.badWords) {
		return nil, model.NewValidationError("Your comment contains inappropriate content")
	}

	// AI outcome decides the approved flag only. Provider failure is
	// swallowed and defaults to approved so submission never depends
	// on the external dependency being reachable.
	approved := true
	if s.moderator != nil {
		if approve, err := s.moderator.ModerateComment(ctx, content); err != nil {
			s.logger.Warn("comment moderation failed, defaulting to approved",
				zap.Error(err))
		} else {
			approved = approve
		}
	}

	comment := &model.Comment{
		PostID:   req.PostID,
		Name:     name,
		Email:    email,
		Content:  content,
		Approved: approved,
		IPHash:   ipHash,
	}
	if err = s.dao.CreateComment(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "persist comment")
	}

	s.logger.Info("new comment created",
		zap.String("post_id", comment.PostID),
		zap.String("comment_id", comment.ID),
		zap.Bool("approved", comment.Approved))

	return comment, nil
}

// LoadComments returns the approved comments of a published post.
func (s *Blog) LoadComments(ctx context.Context, slug string) ([]*model.Comment, error) {
	post, err := s.dao.GetPublishedPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return s.dao.ListApprovedComments(ctx, post.ID)
}

// AdminListComments returns every comment for the moderation panel.
func (s *Blog) AdminListComments(ctx context.Context) ([]*dto.AdminComment, error) {
	return s.dao.ListAllComments(ctx)
}

// ApproveComment marks a comment as publicly visible.
func (s *Blog) ApproveComment(ctx context.Context, id string) error {
	if err := s.dao.ApproveComment(ctx, id); err != nil {
		return err
	}

	s.logger.Info("comment approved", zap.String("comment_id", id))
	return nil
}

// DeleteComment removes a comment.
func (s *Blog) DeleteComment(ctx context.Context, id string) error {
	if err := s.dao.DeleteComment(ctx, id); err != nil {
		return err
	}

	s.logger.Info("comment deleted", zap.String("comment_id", id))
	return nil
}
