package authctx

import (
	"context"
	"testing"
	"time"

	"social_feed/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextGuard(t *testing.T) {
	g := NewGuard()

	t.Run("Anonymous resolves to nil", func(t *testing.T) {
		acc, err := g.ResolveCurrentAccount(context.Background())

		assert.NoError(t, err)
		assert.Nil(t, acc)
	})

	t.Run("Anonymous require fails", func(t *testing.T) {
		acc, err := g.RequireCurrentAccount(context.Background())

		assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
		assert.Nil(t, acc)
	})

	t.Run("Signed in", func(t *testing.T) {
		ctx := ForAccount(context.Background(), "user-1")

		acc, err := g.RequireCurrentAccount(ctx)

		require.NoError(t, err)
		assert.Equal(t, "user-1", acc.ID)
	})

	t.Run("Expired session is anonymous", func(t *testing.T) {
		ctx := WithSession(context.Background(), &Session{
			Account:   Account{ID: "user-1"},
			ExpiresAt: time.Now().Add(-time.Minute),
		})

		acc, err := g.ResolveCurrentAccount(ctx)

		assert.NoError(t, err)
		assert.Nil(t, acc)
	})
}
