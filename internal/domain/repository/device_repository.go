package repository

import (
	"context"

	"inventory/internal/domain/entity"
	"inventory/internal/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device id that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceFilter narrows SearchDevices. Zero values mean "any".
type DeviceFilter struct {
	IDPrefix string
	ShelfID  string
	Status   entity.DeviceStatus
	Type     entity.DeviceType
	Limit    int
}

// DeviceRepository defines the standard operations for device persistence.
type DeviceRepository interface {
	// FindDeviceByID retrieves a device by its operator-assigned id.
	FindDeviceByID(ctx context.Context, id string) (*entity.Device, error)

	// FindDevicesByIDs retrieves the devices that exist among ids, keyed by id.
	FindDevicesByIDs(ctx context.Context, ids []string) (map[string]*entity.Device, error)

	// FindDevicesByShelf retrieves every device referencing the shelf.
	FindDevicesByShelf(ctx context.Context, shelfID string) ([]*entity.Device, error)

	// SearchDevices retrieves devices matching the filter ordered by id.
	SearchDevices(ctx context.Context, filter DeviceFilter) ([]*entity.Device, error)

	// CreateDevice persists a new device. It fails with ErrDuplicateDevice when the id exists.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// UpdateDevice overwrites an existing device, including its history.
	UpdateDevice(ctx context.Context, device *entity.Device) error

	// DeleteDevice removes a device by id.
	DeleteDevice(ctx context.Context, id string) error
}
