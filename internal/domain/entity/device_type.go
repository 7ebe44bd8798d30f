// Package entity contains the core business objects of the inventory.
package entity

// DeviceType is the equipment category a shelf may hold.
type DeviceType string

const (
	// DeviceTypeONU is an optical network unit.
	DeviceTypeONU DeviceType = "onu"
	// DeviceTypeSTB is a set-top box.
	DeviceTypeSTB DeviceType = "stb"
)

// String returns the string representation of the DeviceType.
func (t DeviceType) String() string {
	return string(t)
}

// IsValid checks if the DeviceType is a known category.
func (t DeviceType) IsValid() bool {
	switch t {
	case DeviceTypeONU, DeviceTypeSTB:
		return true
	default:
		return false
	}
}

// DeviceStatus is the lifecycle state of a tracked device.
type DeviceStatus string

const (
	// DeviceStatusActive marks a device that is physically on its shelf.
	DeviceStatusActive DeviceStatus = "active"
	// DeviceStatusRemoved marks a device that was retired from the shelf.
	DeviceStatusRemoved DeviceStatus = "removed"
)

// String returns the string representation of the DeviceStatus.
func (s DeviceStatus) String() string {
	return string(s)
}

// IsValid checks if the DeviceStatus is a known state.
func (s DeviceStatus) IsValid() bool {
	switch s {
	case DeviceStatusActive, DeviceStatusRemoved:
		return true
	default:
		return false
	}
}
