// Package controller exposes the AI assist feature over HTTP.
package controller

import (
	"context"
	"net/http"
	"strings"

	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/chandemahtab/blog-api/internal/web/assist/dto"
	"github.com/chandemahtab/blog-api/internal/web/assist/service"
	"github.com/chandemahtab/blog-api/library/log"
)

// Assist controller type
type Assist struct {
	svc *service.Assist
}

var Instance *Assist

func Initialize(ctx context.Context) {
	service.Initialize(ctx)
	Instance = New(service.Instance)
}

// New create new assist controller
func New(svc *service.Assist) *Assist {
	return &Assist{svc: svc}
}

// validLanguage accepts the supported output languages; empty means
// the service default.
func validLanguage(language string) bool {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "", "english", "urdu":
		return true
	default:
		return false
	}
}

// providerError masks upstream failures behind a generic message so
// provider details never leak to clients.
func providerError(ctx *gin.Context, task string, err error) {
	log.Logger.Error("assist provider failed",
		zap.String("task", task), zap.Error(err))
	ctx.JSON(http.StatusBadGateway, gin.H{"message": "Failed to " + task})
}

// Translate handles POST /api/ai/translate
func (c *Assist) Translate(ctx *gin.Context) {
	req := new(dto.TranslateRequest)
	if err := ctx.ShouldBindJSON(req); err != nil || strings.TrimSpace(req.Text) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "text is required"})
		return
	}

	target := strings.ToLower(strings.TrimSpace(req.TargetLanguage))
	if target != "english" && target != "urdu" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "targetLanguage must be english or urdu"})
		return
	}

	result, err := c.svc.Translate(ctx.Request.Context(), req.Text, target)
	if err != nil {
		providerError(ctx, "translate text", err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// Summarize handles POST /api/ai/summarize
func (c *Assist) Summarize(ctx *gin.Context) {
	req := new(dto.SummarizeRequest)
	if err := ctx.ShouldBindJSON(req); err != nil || strings.TrimSpace(req.Content) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "content is required"})
		return
	}
	if !validLanguage(req.Language) {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "language must be english or urdu"})
		return
	}

	result, err := c.svc.Summarize(ctx.Request.Context(), req.Content, req.Language, req.MaxWords)
	if err != nil {
		providerError(ctx, "summarize content", err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GenerateTags handles POST /api/ai/generate-tags
func (c *Assist) GenerateTags(ctx *gin.Context) {
	req := new(dto.TagsRequest)
	if err := ctx.ShouldBindJSON(req); err != nil ||
		(strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Content) == "") {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "title or content is required"})
		return
	}

	result, err := c.svc.SuggestTags(ctx.Request.Context(), req.Title, req.Content)
	if err != nil {
		providerError(ctx, "generate tags", err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// Suggestions handles POST /api/ai/suggestions
func (c *Assist) Suggestions(ctx *gin.Context) {
	req := new(dto.SuggestionsRequest)
	if err := ctx.ShouldBindJSON(req); err != nil || strings.TrimSpace(req.Content) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "content is required"})
		return
	}
	if !validLanguage(req.Language) {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "language must be english or urdu"})
		return
	}

	result, err := c.svc.Suggestions(ctx.Request.Context(), req.Content, req.Language)
	if err != nil {
		providerError(ctx, "generate suggestions", err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// Moderate handles POST /api/ai/moderate
func (c *Assist) Moderate(ctx *gin.Context) {
	req := new(dto.ModerateRequest)
	if err := ctx.ShouldBindJSON(req); err != nil || strings.TrimSpace(req.Content) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "content is required"})
		return
	}

	result, err := c.svc.Moderate(ctx.Request.Context(), req.Content)
	if err != nil {
		providerError(ctx, "moderate comment", err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
