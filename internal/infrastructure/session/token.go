package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Valid reports whether token is decodable and its expiration claim is
// strictly in the future. The signature is NOT verified: this layer treats
// the token as opaque and only the remote API can vouch for it.
func Valid(token string) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.After(time.Now())
}
