package authenticator

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ExpiresAt reads the exp claim of an access token without verifying its
// signature; the server is the one that verifies it. The boolean is false
// when the token is not a JWT or carries no exp claim.
func ExpiresAt(token string) (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}

	return claims.ExpiresAt.Time, true
}

// IsExpired reports whether token is a JWT whose exp claim is before now.
func IsExpired(token string, now time.Time) bool {
	exp, ok := ExpiresAt(token)
	return ok && !now.Before(exp)
}
