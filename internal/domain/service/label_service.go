package service

// LabelService renders and decodes printable shelf labels.
type LabelService interface {
	// GenerateShelfLabel returns a PNG QR code identifying the shelf.
	GenerateShelfLabel(shelfID string) ([]byte, error)

	// ParseShelfLabel decodes scanned label data and returns the shelf id.
	ParseShelfLabel(data string) (string, error)
}
