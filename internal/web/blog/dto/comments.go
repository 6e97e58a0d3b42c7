package dto

import "github.com/chandemahtab/blog-api/internal/web/blog/model"

// NewComment is the public payload for submitting a comment.
type NewComment struct {
	PostID  string `json:"postId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Content string `json:"content"`
}

// AdminComment decorates a comment with its post slug for the
// moderation listing. Email shadows the hidden model field so it is
// exposed to moderators only.
type AdminComment struct {
	model.Comment
	PostSlug string `json:"postSlug"`
	Email    string `gorm:"-" json:"email"`
}
