package entity

import "time"

// HistoryAction is the kind of event recorded in a device's audit history.
type HistoryAction string

const (
	// HistoryActionCreated is always the first entry of a device.
	HistoryActionCreated HistoryAction = "created"
	// HistoryActionAdded records that a device was flagged on a user's search list.
	HistoryActionAdded HistoryAction = "added"
	// HistoryActionRemoved records that a device was retired.
	HistoryActionRemoved HistoryAction = "removed"
	// HistoryActionRestored records that a retired device was returned to its shelf.
	HistoryActionRestored HistoryAction = "restored"
	// HistoryActionMoved records a shelf reassignment.
	HistoryActionMoved HistoryAction = "moved"
)

// History sources.
const (
	HistorySourceManual = "manual"
	HistorySourceSearch = "search"
)

// HistoryEntry is one append-only audit record of a device.
type HistoryEntry struct {
	Action        HistoryAction `json:"action"`
	Date          time.Time     `json:"date"`
	UserID        string        `json:"user_id,omitempty"`
	UserName      string        `json:"user_name,omitempty"`
	Source        string        `json:"source,omitempty"`
	Description   string        `json:"description,omitempty"`
	ShelfName     string        `json:"shelf_name,omitempty"`
	FromShelfName string        `json:"from_shelf_name,omitempty"`
}

// Device is a physical ONU or STB tracked by its operator-assigned identifier.
type Device struct {
	ID          string         `json:"id"`
	ShelfID     string         `json:"shelf_id"`
	ShelfName   string         `json:"shelf_name"` // Snapshot of the shelf name at the last assignment.
	Type        DeviceType     `json:"type"`
	Status      DeviceStatus   `json:"status"`
	AddedDate   time.Time      `json:"added_date"`
	RemovedDate *time.Time     `json:"removed_date,omitempty"`
	History     []HistoryEntry `json:"history"`
}

// AppendHistory adds an entry to the end of the device history.
func (d *Device) AppendHistory(entry HistoryEntry) {
	d.History = append(d.History, entry)
}

// IsActive reports whether the device is currently on its shelf.
func (d *Device) IsActive() bool {
	return d.Status == DeviceStatusActive
}
