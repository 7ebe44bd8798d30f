// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the use cases and the store adapters.
package repository

import (
	"context"

	"inventory/internal/domain/entity"
	"inventory/internal/errors"
)

// ErrShelfNotFound is returned when a shelf does not exist.
var ErrShelfNotFound = errors.New("shelf not found")

// ShelfFilter narrows ListShelves. Zero values mean "any".
type ShelfFilter struct {
	Type          entity.DeviceType
	WithSpaceOnly bool
}

// ShelfRepository defines the standard operations for shelf persistence.
type ShelfRepository interface {
	// FindShelfByID retrieves a shelf by its identifier.
	FindShelfByID(ctx context.Context, id string) (*entity.Shelf, error)

	// ListShelves returns shelves ordered by name.
	ListShelves(ctx context.Context, filter ShelfFilter) ([]*entity.Shelf, error)

	// CreateShelf persists a new shelf and assigns its ID.
	CreateShelf(ctx context.Context, shelf *entity.Shelf) error

	// UpdateShelf overwrites name, capacity, type and item count of an existing shelf.
	UpdateShelf(ctx context.Context, shelf *entity.Shelf) error

	// DeleteShelf removes a shelf record.
	DeleteShelf(ctx context.Context, id string) error
}
