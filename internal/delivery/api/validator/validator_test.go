package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shelfRequest struct {
	Name     string `json:"name" validate:"required,max=5"`
	Capacity int    `json:"capacity" validate:"gt=0"`
	Type     string `json:"type" validate:"required,oneof=onu stb"`
}

func TestValidator(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&shelfRequest{Name: "A1", Capacity: 1, Type: "onu"}))

	err := v.Validate(&shelfRequest{Name: "toolong", Capacity: 0, Type: "tv"})
	require.Error(t, err)

	msg := Message(err)
	assert.Contains(t, msg, "name must be at most 5")
	assert.Contains(t, msg, "capacity must be at least 0 exclusive")
	assert.Contains(t, msg, "type must be one of: onu stb")
}
