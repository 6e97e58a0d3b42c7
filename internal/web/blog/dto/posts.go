// Package dto contains the request/response shapes of the blog feature.
package dto

import "github.com/chandemahtab/blog-api/internal/web/blog/model"

// PostInput is the admin payload for creating or updating a post.
type PostInput struct {
	TitleEn    string `json:"titleEn"`
	TitleUr    string `json:"titleUr"`
	SummaryEn  string `json:"summaryEn"`
	SummaryUr  string `json:"summaryUr"`
	Content    string `json:"content"`
	Tags       string `json:"tags"`
	CoverImage string `json:"coverImage"`
	Published  bool   `json:"published"`
}

// PostCfg filters the public post listing.
type PostCfg struct {
	Page int
	Size int
	Tag  string
}

// PostWithCommentCount decorates a post with its comment count for
// the admin listing.
type PostWithCommentCount struct {
	model.Post
	CommentCount int64 `json:"commentCount"`
}

// SearchResult is the payload of the public search endpoint.
type SearchResult struct {
	Query   string        `json:"query"`
	Results []*model.Post `json:"results"`
	Count   int           `json:"count"`
}
