// Package auth issues and verifies the http-only admin session cookie.
package auth

import (
	"net/http"
	"time"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	jwtLib "github.com/golang-jwt/jwt/v5"
	"github.com/gin-gonic/gin"

	"github.com/chandemahtab/blog-api/library/jwt"
)

const (
	// CookieName name of the admin session cookie
	CookieName = "admin-token"
	// TokenExpire admin session lifetime
	TokenExpire = 24 * time.Hour
)

// SetLoginCookie signs a fresh admin token and stores it as an
// http-only cookie on the response.
func SetLoginCookie(ctx *gin.Context) error {
	now := gutils.Clock.GetUTCNow()
	token, err := jwt.Instance.Sign(&jwt.AdminClaims{
		RegisteredClaims: jwtLib.RegisteredClaims{
			IssuedAt:  jwtLib.NewNumericDate(now),
			ExpiresAt: jwtLib.NewNumericDate(now.Add(TokenExpire)),
		},
		IsAdmin:   true,
		LoginTime: now.UnixMilli(),
	})
	if err != nil {
		return errors.Wrap(err, "sign admin token")
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(CookieName, token, int(TokenExpire.Seconds()), "/", "", false, true)
	return nil
}

// ClearLoginCookie expires the admin session cookie.
func ClearLoginCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// GetAdminClaims extracts and verifies the admin token from the request cookie.
func GetAdminClaims(ctx *gin.Context) (*jwt.AdminClaims, error) {
	token, err := ctx.Cookie(CookieName)
	if err != nil {
		return nil, errors.Wrap(err, "read admin cookie")
	}

	claims, err := jwt.Instance.Verify(token)
	if err != nil {
		return nil, errors.Wrap(err, "verify admin token")
	}
	if !claims.IsAdmin {
		return nil, errors.New("token is not an admin token")
	}

	return claims, nil
}

// AdminRequired aborts with 401 unless the request carries a valid admin cookie.
func AdminRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, err := GetAdminClaims(ctx); err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		ctx.Next()
	}
}
