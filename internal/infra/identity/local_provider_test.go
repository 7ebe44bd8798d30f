package identity

import (
	"context"
	"testing"
	"time"

	"inventory/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalProvider(t *testing.T) *LocalProvider {
	t.Helper()

	provider, err := NewLocalProvider("test-secret", time.Hour)
	require.NoError(t, err)
	provider.Register(service.Identity{
		UID:          "uid-1",
		Email:        "ana@example.com",
		Name:         "Ana",
		CustomClaims: map[string]any{"team": "field"},
	})

	return provider
}

func TestNewLocalProvider_RequiresSecret(t *testing.T) {
	_, err := NewLocalProvider("", time.Hour)
	assert.Error(t, err)
}

func TestLocalProvider_IssueAndVerify(t *testing.T) {
	provider := newTestLocalProvider(t)

	token, err := provider.IssueToken("uid-1")
	require.NoError(t, err)

	caller, err := provider.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", caller.UID)
	assert.Equal(t, "Ana", caller.Name)
	assert.Equal(t, "ana@example.com", caller.Email)
	assert.False(t, caller.IsAdmin)
}

func TestLocalProvider_ClaimAppliesAfterRefresh(t *testing.T) {
	ctx := context.Background()
	provider := newTestLocalProvider(t)

	before, err := provider.IssueToken("uid-1")
	require.NoError(t, err)

	require.NoError(t, provider.SetCustomClaims(ctx, "uid-1", map[string]any{"team": "field", service.AdminClaim: true}))

	caller, err := provider.VerifyToken(ctx, before)
	require.NoError(t, err)
	assert.False(t, caller.IsAdmin, "an old token keeps its old claims")

	after, err := provider.IssueToken("uid-1")
	require.NoError(t, err)
	caller, err = provider.VerifyToken(ctx, after)
	require.NoError(t, err)
	assert.True(t, caller.IsAdmin)

	identity, err := provider.GetIdentity(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "field", identity.CustomClaims["team"])
}

func TestLocalProvider_VerifyToken_Rejects(t *testing.T) {
	provider := newTestLocalProvider(t)
	other, err := NewLocalProvider("other-secret", time.Hour)
	require.NoError(t, err)
	other.Register(service.Identity{UID: "uid-1"})

	foreign, err := other.IssueToken("uid-1")
	require.NoError(t, err)

	expiredProvider := newTestLocalProvider(t)
	expiredProvider.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredProvider.IssueToken("uid-1")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := provider.VerifyToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, service.ErrInvalidToken)
		})
	}
}

func TestLocalProvider_Lookups(t *testing.T) {
	ctx := context.Background()
	provider := newTestLocalProvider(t)

	identity, err := provider.GetIdentityByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", identity.UID)

	_, err = provider.GetIdentity(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrIdentityNotFound)

	_, err = provider.GetIdentityByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, service.ErrIdentityNotFound)

	err = provider.SetCustomClaims(ctx, "missing", map[string]any{})
	assert.ErrorIs(t, err, service.ErrIdentityNotFound)

	_, err = provider.IssueToken("missing")
	assert.ErrorIs(t, err, service.ErrIdentityNotFound)
}
