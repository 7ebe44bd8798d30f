package entity

import (
	"slices"
	"time"
)

// UserProfile is the per-user document kept alongside the identity record.
type UserProfile struct {
	ID         string    `json:"id"`    // Identity provider UID.
	Name       string    `json:"name"`  // Display name copied from the identity token.
	Email      string    `json:"email"` // Email copied from the identity token.
	IsAdmin    bool      `json:"is_admin"`
	SearchList []string  `json:"search_list"` // Device ids the user flagged for follow-up.
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HasSearched reports whether the device id is on the user's search list.
func (p *UserProfile) HasSearched(deviceID string) bool {
	return slices.Contains(p.SearchList, deviceID)
}

// Caller is the authenticated identity behind a request, derived from a verified token.
// IsAdmin comes from the token's custom claim and is the only source of admin rights.
type Caller struct {
	UID     string
	Name    string
	Email   string
	IsAdmin bool
}

// DisplayName returns the best human-readable label for the caller.
func (c *Caller) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	if c.Email != "" {
		return c.Email
	}

	return c.UID
}
