package qrcode

import (
	"testing"

	"inventory/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.input))
		})
	}
}

func TestNewLabelService_Defaults(t *testing.T) {
	svc := NewLabelService(&config.Config{}).(*labelService)

	assert.Equal(t, defaultLabelSize, svc.size)
	assert.Equal(t, defaultLabelPrefix, svc.prefix)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)
}

func TestLabelService_GenerateShelfLabel(t *testing.T) {
	svc := newLabelService(256, "M", "shelf:")

	png, err := svc.GenerateShelfLabel("A-01")
	require.NoError(t, err)
	require.Greater(t, len(png), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestLabelService_GenerateShelfLabel_EmptyID(t *testing.T) {
	svc := newLabelService(256, "M", "shelf:")

	_, err := svc.GenerateShelfLabel("  ")
	assert.ErrorIs(t, err, ErrInvalidLabel)
}

func TestLabelService_ParseShelfLabel(t *testing.T) {
	svc := newLabelService(256, "M", "shelf:")

	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{name: "valid", data: "shelf:A-01", want: "A-01"},
		{name: "surrounding whitespace", data: "  shelf:A-01\n", want: "A-01"},
		{name: "round trip payload", data: svc.Payload("xyz"), want: "xyz"},
		{name: "missing prefix", data: "A-01", wantErr: true},
		{name: "empty id", data: "shelf:", wantErr: true},
		{name: "path in id", data: "shelf:a/b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseShelfLabel(tt.data)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLabel)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
