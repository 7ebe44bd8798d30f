// Package identity implements service.IdentityProvider.
package identity

import (
	"context"
	"strings"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// authClient is the subset of *auth.Client used here.
type authClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
	GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error)
	SetCustomUserClaims(ctx context.Context, uid string, customClaims map[string]interface{}) error
}

type firebaseProvider struct {
	client authClient
}

// NewFirebaseProvider wraps Firebase Auth.
func NewFirebaseProvider(client *auth.Client) service.IdentityProvider {
	return &firebaseProvider{client: client}
}

func (p *firebaseProvider) VerifyToken(ctx context.Context, token string) (*entity.Caller, error) {
	if strings.TrimSpace(token) == "" {
		return nil, service.ErrInvalidToken
	}

	verified, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	return callerFromClaims(verified.UID, verified.Claims), nil
}

func (p *firebaseProvider) GetIdentity(ctx context.Context, uid string) (*service.Identity, error) {
	record, err := p.client.GetUser(ctx, uid)
	if err != nil {
		return nil, mapUserError(err, uid)
	}

	return identityFromRecord(record), nil
}

func (p *firebaseProvider) GetIdentityByEmail(ctx context.Context, email string) (*service.Identity, error) {
	record, err := p.client.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, mapUserError(err, email)
	}

	return identityFromRecord(record), nil
}

func (p *firebaseProvider) SetCustomClaims(ctx context.Context, uid string, claims map[string]any) error {
	if err := p.client.SetCustomUserClaims(ctx, uid, claims); err != nil {
		return mapUserError(err, uid)
	}

	return nil
}

func mapUserError(err error, key string) error {
	if auth.IsUserNotFound(err) {
		return errors.Wrap(service.ErrIdentityNotFound, key)
	}

	return errors.Wrapf(err, "identity provider request for %s", key)
}

func identityFromRecord(record *auth.UserRecord) *service.Identity {
	identity := &service.Identity{CustomClaims: record.CustomClaims}
	if record.UserInfo != nil {
		identity.UID = record.UID
		identity.Email = record.Email
		identity.Name = record.DisplayName
	}
	if identity.CustomClaims == nil {
		identity.CustomClaims = map[string]any{}
	}

	return identity
}

// callerFromClaims reads the standard name/email claims and the admin custom claim.
func callerFromClaims(uid string, claims map[string]any) *entity.Caller {
	caller := &entity.Caller{UID: uid}
	if name, ok := claims["name"].(string); ok {
		caller.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		caller.Email = email
	}
	if isAdmin, ok := claims[service.AdminClaim].(bool); ok {
		caller.IsAdmin = isAdmin
	}

	return caller
}
