package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		m := NewTokenManager(testSecret, time.Hour)

		token, issued, err := m.GenerateToken("u-1", "neo@example.com")
		require.NoError(t, err)

		claims, err := m.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.UserID)
		assert.Equal(t, "neo@example.com", claims.Email)
		assert.Equal(t, issued.ID, claims.ID)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("Unique jti", func(t *testing.T) {
		m := NewTokenManager(testSecret, time.Hour)

		_, a, err := m.GenerateToken("u-1", "")
		require.NoError(t, err)
		_, b, err := m.GenerateToken("u-1", "")
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("Expired", func(t *testing.T) {
		m := NewTokenManager(testSecret, -time.Minute)

		token, _, err := m.GenerateToken("u-1", "")
		require.NoError(t, err)

		_, err = m.ParseToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, _, err := NewTokenManager(testSecret, time.Hour).GenerateToken("u-1", "")
		require.NoError(t, err)

		_, err = NewTokenManager("another-secret-another-secret-xx", time.Hour).ParseToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})
}
