// Package jwt signs and verifies the admin session token.
package jwt

import (
	"github.com/Laisky/errors/v2"
	jwtLib "github.com/golang-jwt/jwt/v5"
)

// JWT signs and parses HS256 tokens with a shared secret.
type JWT struct {
	secret []byte
}

var Instance *JWT

func Initialize(secret []byte) error {
	if len(secret) == 0 {
		return errors.New("jwt secret cannot be empty")
	}

	Instance = &JWT{secret: secret}
	return nil
}

// Sign encodes claims into a signed token string.
func (j *JWT) Sign(claims *AdminClaims) (string, error) {
	token, err := jwtLib.NewWithClaims(jwtLib.SigningMethodHS256, claims).
		SignedString(j.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return token, nil
}

// Verify parses the token and returns its claims.
// Expired or tampered tokens return an error.
func (j *JWT) Verify(token string) (*AdminClaims, error) {
	claims := new(AdminClaims)
	parsed, err := jwtLib.ParseWithClaims(token, claims,
		func(t *jwtLib.Token) (any, error) {
			if _, ok := t.Method.(*jwtLib.SigningMethodHMAC); !ok {
				return nil, errors.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return j.secret, nil
		},
		jwtLib.WithValidMethods([]string{jwtLib.SigningMethodHS256.Alg()}),
		jwtLib.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	if !parsed.Valid {
		return nil, errors.New("token invalid")
	}

	return claims, nil
}
