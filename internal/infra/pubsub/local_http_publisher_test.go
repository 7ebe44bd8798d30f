package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inventory/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishInventoryEvent(t *testing.T) {
	var received PushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.InventoryEvent{
		RequestID:  "req-1",
		Type:       service.EventDevicesAdded,
		ShelfIDs:   []string{"shelf-1"},
		DeviceIDs:  []string{"A1", "A2"},
		ActorID:    "uid-1",
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishInventoryEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, service.EventDevicesAdded, received.Message.Attributes["event_type"])
	assert.Equal(t, "uid-1", received.Message.Attributes["actor_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.InventoryEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.DeviceIDs, decoded.DeviceIDs)
	assert.Equal(t, event.ShelfIDs, decoded.ShelfIDs)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishInventoryEvent(context.Background(), &service.InventoryEvent{Type: service.EventShelfCreated})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEventAttributes_OmitsEmptyValues(t *testing.T) {
	attrs := eventAttributes(&service.InventoryEvent{Type: service.EventShelfDeleted})

	assert.Equal(t, map[string]string{"event_type": service.EventShelfDeleted}, attrs)
}
