package repository

import (
	"context"

	"inventory/internal/domain/entity"
	"inventory/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a profile is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the operations on user profiles and their search lists.
type UserRepository interface {
	// FindByID retrieves a profile by identity UID.
	FindByID(ctx context.Context, id string) (*entity.UserProfile, error)

	// Upsert creates the profile or refreshes its name and email. The stored search list is
	// left untouched and copied back into profile along with the timestamps.
	Upsert(ctx context.Context, profile *entity.UserProfile) error

	// FindUserIDsSearching returns the ids of users whose search list contains any of deviceIDs,
	// mapped to the matching device ids.
	FindUserIDsSearching(ctx context.Context, deviceIDs []string) (map[string][]string, error)

	// AddToSearchList adds device ids to a user's search list, ignoring ids already present.
	AddToSearchList(ctx context.Context, userID string, deviceIDs []string) error

	// RemoveFromSearchList removes device ids from a user's search list.
	RemoveFromSearchList(ctx context.Context, userID string, deviceIDs []string) error
}
