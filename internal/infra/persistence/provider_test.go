package persistence

import (
	"io"
	"log/slog"
	"testing"

	"inventory/config"
	"inventory/internal/domain/constants"
	"inventory/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionManager(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("memory", func(t *testing.T) {
		cfg := &config.Config{Store: config.StoreConfig{Provider: constants.StoreProviderMemory, MaxWritesPerCommit: 20}}

		tm, err := NewTransactionManager(Params{Config: cfg, Logger: logger})
		require.NoError(t, err)
		assert.IsType(t, &memory.Store{}, tm)
		assert.Equal(t, 20, tm.MaxWritesPerCommit())
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := &config.Config{Store: config.StoreConfig{Provider: "dynamo"}}

		_, err := NewTransactionManager(Params{Config: cfg, Logger: logger})
		assert.ErrorContains(t, err, "unknown store provider")
	})
}
