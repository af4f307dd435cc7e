package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/model"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	tokenID, token, err := svc.GenerateSessionToken(7, "admin@atelier.local", model.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	sess := claims.Session()
	assert.Equal(t, uint(7), sess.UserID)
	assert.Equal(t, "admin@atelier.local", sess.Email)
	assert.Equal(t, model.RoleAdmin, sess.Role)
	assert.Equal(t, tokenID, sess.TokenID)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	_, token, err := svc.GenerateSessionToken(1, "a@b.cz", model.RoleUser)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewJWTService("other", time.Hour).ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		old := NewJWTService("test-secret", time.Minute)
		old.now = func() time.Time { return time.Now().Add(-time.Hour) }
		_, expired, err := old.GenerateSessionToken(1, "a@b.cz", model.RoleUser)
		require.NoError(t, err)

		_, err = svc.ValidateToken(expired)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.Error(t, err)
	})
}

func TestNewJWTService_DefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultSessionTTL, NewJWTService("s", 0).TTL())
}

func TestTokenStore_NilCacheNeverRevoked(t *testing.T) {
	store := NewTokenStore(nil)
	ctx := context.Background()

	require.NoError(t, store.RevokeSession(ctx, "id", time.Minute))
	revoked, err := store.IsSessionRevoked(ctx, "id")
	require.NoError(t, err)
	assert.False(t, revoked)
}
