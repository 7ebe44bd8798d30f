package usecase

import (
	"context"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"
)

// CatalogUsecase defines read access to shelves and devices.
type CatalogUsecase interface {
	GetShelf(ctx context.Context, shelfID string) (*entity.Shelf, error)
	ListShelves(ctx context.Context, filter repository.ShelfFilter) ([]*entity.Shelf, error)

	// ListMoveTargets returns shelves of the device's type that have space, excluding its current shelf.
	ListMoveTargets(ctx context.Context, deviceID string) ([]*entity.Shelf, error)

	GetDevice(ctx context.Context, deviceID string) (*entity.Device, error)
	SearchDevices(ctx context.Context, filter repository.DeviceFilter) ([]*entity.Device, error)

	// ShelfLabel renders the printable QR label of a shelf.
	ShelfLabel(ctx context.Context, shelfID string) ([]byte, error)

	// ResolveLabel returns the shelf a scanned label points to.
	ResolveLabel(ctx context.Context, payload string) (*entity.Shelf, error)
}
