// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"inventory/internal/domain/entity"
)

// --- Input DTOs ---

// AddDevicesInput defines a batch of devices to place on one shelf.
type AddDevicesInput struct {
	// RawIDs is operator text; ids are separated by whitespace, commas or semicolons.
	RawIDs  string
	ShelfID string
	Type    entity.DeviceType
}

// ShelfInput defines the editable fields of a shelf.
type ShelfInput struct {
	Name     string
	Capacity int
	Type     entity.DeviceType
}

// --- Output DTOs ---

// AddDevicesOutput returns the created devices and the updated shelf.
type AddDevicesOutput struct {
	Shelf   *entity.Shelf    `json:"shelf"`
	Devices []*entity.Device `json:"devices"`
}

// UpdateShelfOutput returns the updated shelf. OverCapacity is set when the
// new capacity is below the number of devices already assigned.
type UpdateShelfOutput struct {
	Shelf        *entity.Shelf `json:"shelf"`
	OverCapacity bool          `json:"over_capacity"`
}

// DeleteShelfOutput reports how many devices were deleted with the shelf.
type DeleteShelfOutput struct {
	ShelfID        string `json:"shelf_id"`
	DeletedDevices int    `json:"deleted_devices"`
}

// InventoryUsecase is the consistency workflow: every mutation that touches
// shelves, devices and their counters runs as one atomic unit.
type InventoryUsecase interface {
	AddDevices(ctx context.Context, actor *entity.Caller, input AddDevicesInput) (*AddDevicesOutput, error)
	MoveDevice(ctx context.Context, actor *entity.Caller, deviceID, targetShelfID string) (*entity.Device, error)
	RetireDevice(ctx context.Context, actor *entity.Caller, deviceID string) (*entity.Device, error)
	RetireAll(ctx context.Context, actor *entity.Caller, deviceIDs []string) ([]*entity.Device, error)
	RestoreDevice(ctx context.Context, actor *entity.Caller, deviceID string) (*entity.Device, error)
	DeleteDevice(ctx context.Context, actor *entity.Caller, deviceID string) error

	CreateShelf(ctx context.Context, actor *entity.Caller, input ShelfInput) (*entity.Shelf, error)
	UpdateShelf(ctx context.Context, actor *entity.Caller, shelfID string, input ShelfInput) (*UpdateShelfOutput, error)
	DeleteShelf(ctx context.Context, actor *entity.Caller, shelfID string) (*DeleteShelfOutput, error)
}
