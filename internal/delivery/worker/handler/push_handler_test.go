package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory/config"
	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/constants"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/service"
	mockUsecase "inventory/internal/mocks/usecase"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushFixtures struct {
	handler *PushHandler
	audit   *mockUsecase.MockAuditUsecase
	echo    *echo.Echo
}

func createTestPushHandler(t *testing.T, cfg *config.Config) pushFixtures {
	audit := mockUsecase.NewMockAuditUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		AuditUC: audit,
	})

	return pushFixtures{handler: h, audit: audit, echo: echo.New()}
}

func pushBody(t *testing.T, event *service.InventoryEvent, attributes map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/inventory-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func (fx pushFixtures) push(body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = fx.handler.HandlePush(fx.echo.NewContext(req, rec))

	return rec
}

func TestPushHandler_AuditsShelves(t *testing.T) {
	fx := createTestPushHandler(t, &config.Config{})

	fx.audit.EXPECT().
		VerifyShelves(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-attr"
		}), []string{"shelf-a", "shelf-b"}).
		Return([]usecase.ShelfDrift{{ShelfID: "shelf-a", Stored: 3, Actual: 2}}, nil)

	rec := fx.push(pushBody(t, &service.InventoryEvent{
		Type:      service.EventDeviceMoved,
		RequestID: "req-event",
		ShelfIDs:  []string{"shelf-a", "shelf-b"},
	}, map[string]string{"request_id": "req-attr"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_SkipsEventsWithoutCounters(t *testing.T) {
	testCases := []struct {
		name  string
		event *service.InventoryEvent
	}{
		{name: "shelf deleted", event: &service.InventoryEvent{Type: service.EventShelfDeleted, ShelfIDs: []string{"shelf-a"}}},
		{name: "no shelves", event: &service.InventoryEvent{Type: service.EventDevicesRetired}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestPushHandler(t, &config.Config{})

			rec := fx.push(pushBody(t, tc.event, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			fx.audit.AssertNotCalled(t, "VerifyShelves", mock.Anything, mock.Anything)
		})
	}
}

func TestPushHandler_ErrorStatus(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "store failure is retried", err: domainerrors.ErrStoreCommitFailed, want: http.StatusServiceUnavailable},
		{name: "internal error is retried", err: domainerrors.ErrInternalError, want: http.StatusServiceUnavailable},
		{name: "client error is acknowledged", err: domainerrors.ErrValidationFailed, want: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestPushHandler(t, &config.Config{})
			fx.audit.EXPECT().VerifyShelves(mock.Anything, []string{"shelf-a"}).Return(nil, tc.err)

			rec := fx.push(pushBody(t, &service.InventoryEvent{
				Type:     service.EventDevicesAdded,
				ShelfIDs: []string{"shelf-a"},
			}, nil))

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestPushHandler_BadPayload(t *testing.T) {
	testCases := []struct {
		name string
		body []byte
	}{
		{name: "not json", body: []byte("{")},
		{name: "data not base64", body: []byte(`{"message":{"data":"%%%"}}`)},
		{name: "data not an event", body: []byte(`{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1]")) + `"}}`)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestPushHandler(t, &config.Config{})

			rec := fx.push(tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_RequiresTokenForGooglePush(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction
	fx := createTestPushHandler(t, cfg)

	rec := fx.push(pushBody(t, &service.InventoryEvent{Type: service.EventDevicesAdded, ShelfIDs: []string{"shelf-a"}}, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_TokenVerification(t *testing.T) {
	develop := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	develop.Env.Env = constants.EnvDevelop
	local := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}

	assert.Nil(t, createTestPushHandler(t, develop).handler.verifyToken)
	assert.Nil(t, createTestPushHandler(t, local).handler.verifyToken)
}

func TestVerifyPubSubToken_HeaderFormat(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.EqualError(t, verifyPubSubToken(req), "missing authorization header")

	req.Header.Set("Authorization", "Basic abc")
	require.EqualError(t, verifyPubSubToken(req), "invalid authorization header format")
}
