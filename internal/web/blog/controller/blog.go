// Package controller exposes the blog feature over HTTP.
package controller

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/chandemahtab/blog-api/internal/web/blog/dto"
	"github.com/chandemahtab/blog-api/internal/web/blog/model"
	"github.com/chandemahtab/blog-api/internal/web/blog/service"
	"github.com/chandemahtab/blog-api/library/log"
)

// Blog controller type
type Blog struct {
	svc *service.Blog
}

var Instance *Blog

func Initialize(ctx context.Context, moderator service.Moderator) {
	service.Initialize(ctx, moderator)
	Instance = New(service.Instance)
}

// New create new blog controller
func New(svc *service.Blog) *Blog {
	return &Blog{svc: svc}
}

// abortWithError translates service failures into HTTP responses.
// Validation and anti-spam failures carry their user-facing message;
// everything unexpected is logged and masked as a 500.
func abortWithError(ctx *gin.Context, err error) {
	var ve *model.ValidationError
	switch {
	case errors.Is(err, model.ErrRateLimited):
		ctx.JSON(http.StatusTooManyRequests, gin.H{"message": "Too many comments. Please wait before submitting again."})
	case errors.As(err, &ve):
		ctx.JSON(http.StatusBadRequest, gin.H{"message": ve.Message})
	case errors.Is(err, model.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	default:
		log.Logger.Error("request failed", zap.Error(err), zap.String("path", ctx.FullPath()))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

// clientAddr extracts the caller's network address, preferring the
// forwarding headers set by the reverse proxy.
func clientAddr(ctx *gin.Context) string {
	if forwarded := ctx.GetHeader("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := ctx.GetHeader("X-Real-Ip"); realIP != "" {
		return realIP
	}
	if addr := ctx.ClientIP(); addr != "" {
		return addr
	}

	return "unknown"
}

// ListPosts handles GET /api/posts
func (c *Blog) ListPosts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))

	posts, err := c.svc.LoadPublishedPosts(ctx.Request.Context(), &dto.PostCfg{
		Page: page,
		Size: size,
		Tag:  ctx.Query("tag"),
	})
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPost handles GET /api/posts/:slug
func (c *Blog) GetPost(ctx *gin.Context) {
	post, err := c.svc.LoadPublishedPost(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Search handles GET /api/search
func (c *Blog) Search(ctx *gin.Context) {
	result, err := c.svc.SearchPosts(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// ListComments handles GET /api/posts/:slug/comments
func (c *Blog) ListComments(ctx *gin.Context) {
	comments, err := c.svc.LoadComments(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment handles POST /api/comments
func (c *Blog) CreateComment(ctx *gin.Context) {
	req := new(dto.NewComment)
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	comment, err := c.svc.CreateComment(ctx.Request.Context(), req, clientAddr(ctx))
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":   "Comment submitted successfully!",
		"commentId": comment.ID,
	})
}

// GetSettings handles GET /api/settings
func (c *Blog) GetSettings(ctx *gin.Context) {
	meta, err := c.svc.LoadSiteMeta(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, meta)
}
