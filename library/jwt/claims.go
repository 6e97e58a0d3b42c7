package jwt

import (
	jwtLib "github.com/golang-jwt/jwt/v5"
)

// AdminClaims is the payload carried by the admin session cookie.
type AdminClaims struct {
	jwtLib.RegisteredClaims
	IsAdmin bool `json:"is_admin"`
	// LoginTime unix milliseconds of the successful login
	LoginTime int64 `json:"login_time"`
}
