// Package service defines interfaces for external collaborators the use cases depend on.
package service

import (
	"context"

	"inventory/internal/domain/entity"
	"inventory/internal/errors"
)

// AdminClaim is the custom claim name carrying admin rights.
const AdminClaim = "isAdmin"

var (
	// ErrInvalidToken is returned when an identity token cannot be verified.
	ErrInvalidToken = errors.New("invalid identity token")
	// ErrIdentityNotFound is returned when the target identity does not exist.
	ErrIdentityNotFound = errors.New("identity not found")
)

// Identity is an account record held by the identity provider.
type Identity struct {
	UID          string
	Email        string
	Name         string
	CustomClaims map[string]any
}

// IsAdmin reports whether the identity currently holds the admin claim.
func (i *Identity) IsAdmin() bool {
	v, ok := i.CustomClaims[AdminClaim].(bool)

	return ok && v
}

// IdentityProvider authenticates callers and manages their custom claims.
type IdentityProvider interface {
	// VerifyToken verifies an identity token and returns the caller it represents.
	VerifyToken(ctx context.Context, token string) (*entity.Caller, error)

	// GetIdentity returns the identity record for uid.
	GetIdentity(ctx context.Context, uid string) (*Identity, error)

	// GetIdentityByEmail returns the identity record for email.
	GetIdentityByEmail(ctx context.Context, email string) (*Identity, error)

	// SetCustomClaims replaces the custom claims of uid. The change reaches the
	// user only after their token is refreshed.
	SetCustomClaims(ctx context.Context, uid string, claims map[string]any) error
}
