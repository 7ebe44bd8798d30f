package usecase

import (
	"context"

	"inventory/internal/domain/entity"
)

// ProfileUsecase defines access to the caller's profile document.
type ProfileUsecase interface {
	// GetProfile returns the caller's profile, creating or refreshing it from the token.
	GetProfile(ctx context.Context, caller *entity.Caller) (*entity.UserProfile, error)
}
