package impl

import (
	"strings"

	domainerrors "inventory/internal/domain/errors"
)

// maxDeviceIDBytes is the longest document id the store accepts.
const maxDeviceIDBytes = 1500

// ParseDeviceIDs splits operator input on whitespace, commas and semicolons.
// Empty tokens are dropped and duplicates keep their first position.
func ParseDeviceIDs(raw string) []string {
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		switch r {
		case ',', ';', ' ', '\t', '\n', '\r', '\v', '\f':
			return true
		default:
			return false
		}
	})

	seen := make(map[string]struct{}, len(tokens))
	ids := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		ids = append(ids, token)
	}

	return ids
}

// uniqueIDs trims and de-duplicates an already split id list.
func uniqueIDs(ids []string) []string {
	return ParseDeviceIDs(strings.Join(ids, ","))
}

// validDeviceID reports whether id can be used as a device document id.
func validDeviceID(id string) bool {
	switch {
	case id == "." || id == "..":
		return false
	case strings.Contains(id, "/"):
		return false
	case len(id) > maxDeviceIDBytes:
		return false
	case len(id) >= 4 && strings.HasPrefix(id, "__") && strings.HasSuffix(id, "__"):
		return false
	}

	return true
}

// validateDeviceIDs rejects the whole list when any id is unusable as a document id.
func validateDeviceIDs(ids []string) error {
	var invalid []string
	for _, id := range ids {
		if !validDeviceID(id) {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) == 0 {
		return nil
	}

	return domainerrors.ErrValidationFailed.
		WithMessagef("invalid device id(s): %s", strings.Join(invalid, ", ")).
		WithDetails(domainerrors.IDsDetails{IDs: invalid})
}
