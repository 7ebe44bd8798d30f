package usecase

import (
	"context"

	"inventory/internal/domain/entity"
)

// SearchListUsecase manages the per-user list of devices flagged for follow-up.
type SearchListUsecase interface {
	// GetSearchList returns the caller's flagged devices that still exist.
	GetSearchList(ctx context.Context, caller *entity.Caller) ([]*entity.Device, error)

	// AddToSearchList flags devices and records an "added" history entry on each newly flagged one.
	AddToSearchList(ctx context.Context, caller *entity.Caller, rawIDs string) ([]*entity.Device, error)

	// RemoveFromSearchList unflags devices.
	RemoveFromSearchList(ctx context.Context, caller *entity.Caller, deviceIDs []string) error

	// RetireSearchList retires every active device on the caller's list.
	RetireSearchList(ctx context.Context, caller *entity.Caller) ([]*entity.Device, error)
}
