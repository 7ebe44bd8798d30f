package entity

import "time"

// Shelf is a named storage location with a fixed capacity and a device-type restriction.
type Shelf struct {
	ID        string     `json:"id"`         // Store-assigned identifier.
	Name      string     `json:"name"`       // Display name, unique by convention only.
	Capacity  int        `json:"capacity"`   // Maximum number of devices.
	Type      DeviceType `json:"type"`       // The device category this shelf holds.
	ItemCount int        `json:"item_count"` // Denormalized number of devices assigned to the shelf.
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Available returns how many more devices fit on the shelf. It is never negative.
func (s *Shelf) Available() int {
	if s.ItemCount >= s.Capacity {
		return 0
	}

	return s.Capacity - s.ItemCount
}

// HasSpace reports whether at least one more device fits.
func (s *Shelf) HasSpace() bool {
	return s.ItemCount < s.Capacity
}

// OverCapacity reports whether the shelf holds more devices than its capacity allows.
// This can only happen after the capacity was lowered by an update.
func (s *Shelf) OverCapacity() bool {
	return s.ItemCount > s.Capacity
}
