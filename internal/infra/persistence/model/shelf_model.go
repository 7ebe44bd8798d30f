package model

import (
	"time"

	"github.com/google/uuid"
)

// ShelfModel mirrors the 'shelves' table.
type ShelfModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;index"`
	Capacity  int       `gorm:"not null;check:capacity > 0"`
	Type      string    `gorm:"type:varchar(8);not null;index"`
	ItemCount int       `gorm:"not null;default:0;check:item_count >= 0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShelfModel) TableName() string {
	return "shelves"
}
