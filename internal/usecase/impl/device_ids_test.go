package impl

import (
	"strings"
	"testing"

	domainerrors "inventory/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeviceIDs(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: []string{}},
		{name: "separators only", raw: " ,;\n\t", want: []string{}},
		{name: "mixed separators", raw: "A1, B2;C3\nD4\tE5", want: []string{"A1", "B2", "C3", "D4", "E5"}},
		{name: "duplicates keep first position", raw: "B2 A1 B2 A1", want: []string{"B2", "A1"}},
		{name: "case is significant", raw: "zte1 ZTE1", want: []string{"zte1", "ZTE1"}},
		{name: "windows line endings", raw: "A1\r\nA2\r\n", want: []string{"A1", "A2"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDeviceIDs(tc.raw))
		})
	}
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []string{"A1", "B2"}, uniqueIDs([]string{" A1 ", "B2", "", "A1"}))
}

func TestValidateDeviceIDs(t *testing.T) {
	testCases := []struct {
		name    string
		ids     []string
		invalid []string
	}{
		{name: "plain serials", ids: []string{"ZTEG1234", "HWTC-99_a", "__x", "x__", "___"}},
		{name: "longest accepted", ids: []string{strings.Repeat("a", maxDeviceIDBytes)}},
		{name: "slash", ids: []string{"A1", "shelf/A2"}, invalid: []string{"shelf/A2"}},
		{name: "dot", ids: []string{".", "A1"}, invalid: []string{"."}},
		{name: "dot dot", ids: []string{".."}, invalid: []string{".."}},
		{name: "dots inside are fine", ids: []string{"a.b", "..."}},
		{name: "reserved form", ids: []string{"__name__", "____"}, invalid: []string{"__name__", "____"}},
		{name: "too long", ids: []string{strings.Repeat("b", maxDeviceIDBytes+1)}, invalid: []string{strings.Repeat("b", maxDeviceIDBytes+1)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateDeviceIDs(tc.ids)
			if tc.invalid == nil {
				assert.NoError(t, err)
				return
			}

			appErr := assertAppError(t, err, domainerrors.ErrValidationFailed)
			require.Equal(t, domainerrors.IDsDetails{IDs: tc.invalid}, appErr.Details())
		})
	}
}
