package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of every issued token. The token is the
// complete credential; nothing is tracked server-side, so expiry is the only
// revocation mechanism.
const TokenTTL = 12 * time.Hour

var secret []byte

var errNoSecret = errors.New("jwt secret not configured")

// SetSecret configures the signing secret. Call once on startup.
func SetSecret(s string) {
	if s != "" {
		secret = []byte(s)
	}
}

// Claims is the token payload: the admin's identity as verified at login.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwtlib.RegisteredClaims
}

// Sign issues a token for the given admin. Subject carries the admin id.
func Sign(adminID, username, role string) (string, error) {
	if len(secret) == 0 {
		return "", errNoSecret
	}
	now := time.Now()
	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   adminID,
			ExpiresAt: jwtlib.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Parse validates signature and expiry and returns the claims. Malformed,
// expired and badly signed tokens all come back as a plain error; callers
// must not distinguish them.
func Parse(tokenStr string) (*Claims, error) {
	if len(secret) == 0 {
		return nil, errNoSecret
	}
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
