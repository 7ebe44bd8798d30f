package model

import (
	"time"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DeviceModel mirrors the 'onus' table. The primary key is the operator-assigned
// device id and the audit history is kept inline as a jsonb array.
type DeviceModel struct {
	ID          string    `gorm:"type:varchar(64);primaryKey"`
	ShelfID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ShelfName   string    `gorm:"type:varchar(100);not null"`
	Type        string    `gorm:"type:varchar(8);not null;index"`
	Status      string    `gorm:"type:varchar(16);not null;index"`
	AddedDate   time.Time `gorm:"not null"`
	RemovedDate *time.Time
	History     datatypes.JSONSlice[entity.HistoryEntry] `gorm:"type:jsonb;not null"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "onus"
}
