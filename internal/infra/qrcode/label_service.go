// Package qrcode renders and decodes shelf labels.
package qrcode

import (
	"fmt"
	"strings"

	"inventory/config"
	"inventory/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultLabelSize   = 256
	defaultLabelPrefix = "shelf:"
)

// ErrInvalidLabel is returned when scanned data is not a shelf label.
var ErrInvalidLabel = errors.New("invalid shelf label")

type labelService struct {
	size                 int
	prefix               string
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewLabelService creates the label service from the label config section.
func NewLabelService(cfg *config.Config) service.LabelService {
	if cfg.Label == nil {
		return newLabelService(defaultLabelSize, "", defaultLabelPrefix)
	}

	return newLabelService(cfg.Label.Size, cfg.Label.ErrorCorrectionLevel, cfg.Label.Prefix)
}

func newLabelService(size int, errorCorrectionLevel, prefix string) *labelService {
	if size <= 0 {
		size = defaultLabelSize
	}
	if prefix == "" {
		prefix = defaultLabelPrefix
	}

	return &labelService{
		size:                 size,
		prefix:               prefix,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// Payload returns the text encoded in a shelf's label.
func (s *labelService) Payload(shelfID string) string {
	return s.prefix + shelfID
}

// GenerateShelfLabel renders the shelf's label as PNG.
func (s *labelService) GenerateShelfLabel(shelfID string) ([]byte, error) {
	if strings.TrimSpace(shelfID) == "" {
		return nil, errors.Wrap(ErrInvalidLabel, "empty shelf id")
	}

	qrCode, err := qrcode.New(s.Payload(shelfID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseShelfLabel returns the shelf id carried by scanned label data.
func (s *labelService) ParseShelfLabel(data string) (string, error) {
	shelfID, ok := strings.CutPrefix(strings.TrimSpace(data), s.prefix)
	if !ok {
		return "", errors.Wrapf(ErrInvalidLabel, "missing %q prefix", s.prefix)
	}

	shelfID = strings.TrimSpace(shelfID)
	if shelfID == "" || strings.ContainsAny(shelfID, "/ \t\n") {
		return "", errors.Wrapf(ErrInvalidLabel, "malformed shelf id %q", shelfID)
	}

	return shelfID, nil
}
