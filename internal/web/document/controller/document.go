// Package controller exposes document extraction over HTTP.
package controller

import (
	"io"
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/chandemahtab/blog-api/internal/web/document/service"
	"github.com/chandemahtab/blog-api/library/log"
)

// uploads above this size are rejected before parsing
const maxUploadBytes = 20 << 20

// Upload handles POST /api/admin/upload-document. It accepts a
// multipart file and returns the extracted HTML content.
func Upload(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "file is required"})
		return
	}
	if header.Size > maxUploadBytes {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "file is too large"})
		return
	}

	file, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "could not read uploaded file"})
		return
	}
	defer file.Close() //nolint:errcheck

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "could not read uploaded file"})
		return
	}

	extracted, err := service.Extract(header.Filename, content)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedFormat) {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "unsupported file format"})
			return
		}

		log.Logger.Error("extract document failed",
			zap.String("filename", header.Filename), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to extract document"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"filename": header.Filename,
		"content":  extracted,
	})
}
