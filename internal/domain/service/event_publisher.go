package service

import (
	"context"
	"time"
)

// Inventory event types.
const (
	EventDevicesAdded   = "devices.added"
	EventDeviceMoved    = "device.moved"
	EventDevicesRetired = "devices.retired"
	EventDeviceRestored = "device.restored"
	EventDeviceDeleted  = "device.deleted"
	EventShelfCreated   = "shelf.created"
	EventShelfUpdated   = "shelf.updated"
	EventShelfDeleted   = "shelf.deleted"
)

// InventoryEvent describes a committed inventory change for downstream consumers.
type InventoryEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	ShelfIDs   []string  `json:"shelf_ids,omitempty"`
	DeviceIDs  []string  `json:"device_ids,omitempty"`
	ActorID    string    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishInventoryEvent publishes a committed change.
	PublishInventoryEvent(ctx context.Context, event *InventoryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
