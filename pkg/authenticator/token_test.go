package authenticator

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.Claims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestIsExpired(t *testing.T) {
	now := time.Now()

	expired := signed(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))})
	require.True(t, IsExpired(expired, now))

	valid := signed(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))})
	require.False(t, IsExpired(valid, now))

	exp, ok := ExpiresAt(valid)
	require.True(t, ok)
	require.Equal(t, now.Add(time.Hour).Unix(), exp.Unix())

	noExp := signed(t, jwt.RegisteredClaims{Subject: "user-1"})
	require.False(t, IsExpired(noExp, now))

	require.False(t, IsExpired("opaque-token", now))
	require.False(t, IsExpired("", now))
}
