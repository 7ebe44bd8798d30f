package model

import "time"

// ProfileModel mirrors the 'users' table. ID is the identity provider UID.
type ProfileModel struct {
	ID        string `gorm:"type:varchar(128);primaryKey"`
	Name      string `gorm:"type:varchar(255)"`
	Email     string `gorm:"type:varchar(255);index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	SearchListEntries []SearchListEntryModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "users"
}

// SearchListEntryModel mirrors the 'search_list_entries' table, one row per flagged device.
// DeviceID is not a foreign key so entries may outlive a deleted shelf's devices.
type SearchListEntryModel struct {
	UserID    string `gorm:"type:varchar(128);primaryKey"`
	DeviceID  string `gorm:"type:varchar(64);primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SearchListEntryModel) TableName() string {
	return "search_list_entries"
}

// All lists every model managed by migrations.
func All() []any {
	return []any{
		&ShelfModel{},
		&DeviceModel{},
		&ProfileModel{},
		&SearchListEntryModel{},
	}
}
