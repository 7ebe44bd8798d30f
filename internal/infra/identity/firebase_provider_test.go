package identity

import (
	"context"
	"errors"
	"testing"

	"inventory/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthClient struct {
	token     *auth.Token
	verifyErr error
	record    *auth.UserRecord
	getErr    error
	setErr    error
	setUID    string
	setClaims map[string]interface{}
}

func (f *fakeAuthClient) VerifyIDToken(_ context.Context, _ string) (*auth.Token, error) {
	return f.token, f.verifyErr
}

func (f *fakeAuthClient) GetUser(_ context.Context, _ string) (*auth.UserRecord, error) {
	return f.record, f.getErr
}

func (f *fakeAuthClient) GetUserByEmail(_ context.Context, _ string) (*auth.UserRecord, error) {
	return f.record, f.getErr
}

func (f *fakeAuthClient) SetCustomUserClaims(_ context.Context, uid string, claims map[string]interface{}) error {
	f.setUID = uid
	f.setClaims = claims

	return f.setErr
}

func TestFirebaseProvider_VerifyToken(t *testing.T) {
	client := &fakeAuthClient{
		token: &auth.Token{
			UID: "uid-1",
			Claims: map[string]interface{}{
				"name":             "Ana",
				"email":            "ana@example.com",
				service.AdminClaim: true,
			},
		},
	}
	provider := &firebaseProvider{client: client}

	caller, err := provider.VerifyToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", caller.UID)
	assert.Equal(t, "Ana", caller.Name)
	assert.Equal(t, "ana@example.com", caller.Email)
	assert.True(t, caller.IsAdmin)
}

func TestFirebaseProvider_VerifyToken_Invalid(t *testing.T) {
	provider := &firebaseProvider{client: &fakeAuthClient{verifyErr: errors.New("token expired")}}

	_, err := provider.VerifyToken(context.Background(), "id-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = provider.VerifyToken(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestFirebaseProvider_GetIdentity(t *testing.T) {
	client := &fakeAuthClient{
		record: &auth.UserRecord{
			UserInfo: &auth.UserInfo{
				UID:         "uid-2",
				Email:       "bo@example.com",
				DisplayName: "Bo",
			},
			CustomClaims: map[string]interface{}{"team": "field"},
		},
	}
	provider := &firebaseProvider{client: client}

	identity, err := provider.GetIdentity(context.Background(), "uid-2")
	require.NoError(t, err)
	assert.Equal(t, "uid-2", identity.UID)
	assert.Equal(t, "Bo", identity.Name)
	assert.False(t, identity.IsAdmin())
	assert.Equal(t, "field", identity.CustomClaims["team"])
}

func TestFirebaseProvider_SetCustomClaims(t *testing.T) {
	client := &fakeAuthClient{}
	provider := &firebaseProvider{client: client}

	claims := map[string]any{service.AdminClaim: true}
	require.NoError(t, provider.SetCustomClaims(context.Background(), "uid-3", claims))
	assert.Equal(t, "uid-3", client.setUID)
	assert.Equal(t, true, client.setClaims[service.AdminClaim])

	client.setErr = errors.New("quota exceeded")
	err := provider.SetCustomClaims(context.Background(), "uid-3", claims)
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrIdentityNotFound)
}

func TestCallerFromClaims_IgnoresNonBoolAdmin(t *testing.T) {
	caller := callerFromClaims("uid", map[string]any{service.AdminClaim: "true"})

	assert.False(t, caller.IsAdmin)
}
