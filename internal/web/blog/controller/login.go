package controller

import (
	"crypto/subtle"
	"net/http"

	"github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/chandemahtab/blog-api/internal/web/blog/model"
	"github.com/chandemahtab/blog-api/library/auth"
	"github.com/chandemahtab/blog-api/library/log"
)

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

const loginFailedMessage = "login failed"

// maskLoginError keeps backend failure detail out of login responses.
// Invalid credentials pass through, anything else is flattened to a
// generic message.
func maskLoginError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, model.ErrInvalidCredentials):
		return errors.WithStack(model.ErrInvalidCredentials)
	default:
		return errors.New(loginFailedMessage)
	}
}

// checkAdminPassword compares the submitted password against the
// configured admin password in constant time.
func checkAdminPassword(password string) error {
	expected := gconfig.Shared.GetString("settings.admin_password")
	if expected == "" {
		return model.ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(expected)) != 1 {
		return model.ErrInvalidCredentials
	}

	return nil
}

// Login handles POST /api/admin/login
func (c *Blog) Login(ctx *gin.Context) {
	req := new(loginRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if err := checkAdminPassword(req.Password); err != nil {
		log.Logger.Warn("admin login rejected", zap.String("addr", clientAddr(ctx)))
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": maskLoginError(err).Error()})
		return
	}

	if err := auth.SetLoginCookie(ctx); err != nil {
		abortWithError(ctx, err)
		return
	}

	log.Logger.Info("admin logged in", zap.String("addr", clientAddr(ctx)))
	ctx.JSON(http.StatusOK, gin.H{"message": "Logged in"})
}

// Logout handles POST /api/admin/logout
func (c *Blog) Logout(ctx *gin.Context) {
	auth.ClearLoginCookie(ctx)
	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
