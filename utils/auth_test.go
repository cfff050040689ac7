package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTRoundTrip(t *testing.T) {
	JwtKey = []byte("test-secret")

	tokenString, err := GenerateJWT("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return JwtKey, nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "alice@example.com", claims.Email)

	// fixed one-hour expiry
	remaining := time.Until(time.Unix(claims.ExpiresAt, 0))
	assert.Greater(t, remaining, 59*time.Minute)
	assert.LessOrEqual(t, remaining, time.Hour)
}

func TestGenerateJWTWrongKeyRejected(t *testing.T) {
	JwtKey = []byte("test-secret")

	tokenString, err := GenerateJWT("alice@example.com")
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("another-secret"), nil
	})
	assert.Error(t, err)
}
