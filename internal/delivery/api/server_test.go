package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventory/config"
	apimiddleware "inventory/internal/delivery/api/middleware"
	"inventory/internal/delivery/api/router"
	"inventory/internal/delivery/api/router/handler"
	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/errors"
	mockService "inventory/internal/mocks/service"
	mockUsecase "inventory/internal/mocks/usecase"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	adminCaller    = &entity.Caller{UID: "admin-1", Name: "Alice", IsAdmin: true}
	operatorCaller = &entity.Caller{UID: "user-1", Name: "Bob"}
)

// apiFixtures holds the echo instance and the mocks behind its routes.
type apiFixtures struct {
	echo       *echo.Echo
	identity   *mockService.MockIdentityProvider
	inventory  *mockUsecase.MockInventoryUsecase
	catalog    *mockUsecase.MockCatalogUsecase
	searchList *mockUsecase.MockSearchListUsecase
	profile    *mockUsecase.MockProfileUsecase
	admin      *mockUsecase.MockAdminUsecase
	report     *mockUsecase.MockReportUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func createTestAPI(t *testing.T) apiFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fx := apiFixtures{
		echo:       NewEcho(cfg, logger, nil),
		identity:   mockService.NewMockIdentityProvider(t),
		inventory:  mockUsecase.NewMockInventoryUsecase(t),
		catalog:    mockUsecase.NewMockCatalogUsecase(t),
		searchList: mockUsecase.NewMockSearchListUsecase(t),
		profile:    mockUsecase.NewMockProfileUsecase(t),
		admin:      mockUsecase.NewMockAdminUsecase(t),
		report:     mockUsecase.NewMockReportUsecase(t),
	}

	r := router.NewRouter(router.RouterParams{
		ShelfHandler: handler.NewShelfHandler(handler.ShelfHandlerParams{
			InventoryUC: fx.inventory,
			CatalogUC:   fx.catalog,
			Logger:      logger,
		}),
		DeviceHandler: handler.NewDeviceHandler(handler.DeviceHandlerParams{
			InventoryUC: fx.inventory,
			CatalogUC:   fx.catalog,
			ReportUC:    fx.report,
			Logger:      logger,
		}),
		SearchListHandler: handler.NewSearchListHandler(handler.SearchListHandlerParams{SearchListUC: fx.searchList}),
		AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{
			ProfileUC: fx.profile,
			AdminUC:   fx.admin,
		}),
		ReportHandler:  handler.NewReportHandler(handler.ReportHandlerParams{ReportUC: fx.report}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(fx.identity),
		Config:         cfg,
	})
	r.RegisterRoutes(fx.echo)
	r.RegisterMetricsRoute(fx.echo)

	return fx
}

func (fx apiFixtures) login(token string, caller *entity.Caller) {
	fx.identity.EXPECT().VerifyToken(mock.Anything, token).Return(caller, nil)
}

func (fx apiFixtures) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-1")

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestAPI_HealthCheckIsPublic(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.Equal(t, "req-1", env.Meta.RequestID)
	assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAPI_Authentication(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/api/v1/shelves", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)

	fx.identity.EXPECT().VerifyToken(mock.Anything, "expired").Return(nil, service.ErrInvalidToken)

	rec, env = fx.do(t, http.MethodGet, "/api/v1/shelves", "expired", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestAPI_AdminRoutesRejectOperators(t *testing.T) {
	fx := createTestAPI(t)
	fx.login("operator", operatorCaller)

	testCases := []struct {
		method string
		path   string
		body   string
	}{
		{method: http.MethodPost, path: "/api/v1/shelves", body: `{"name":"A","capacity":2,"type":"onu"}`},
		{method: http.MethodPut, path: "/api/v1/shelves/s1", body: `{"name":"A","capacity":2,"type":"onu"}`},
		{method: http.MethodDelete, path: "/api/v1/shelves/s1"},
		{method: http.MethodDelete, path: "/api/v1/devices/X1"},
		{method: http.MethodPut, path: "/api/v1/admin/users/u2/admin-claim", body: `{"is_admin":true}`},
		{method: http.MethodGet, path: "/api/v1/reports/inventory.xlsx"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec, env := fx.do(t, tc.method, tc.path, "operator", tc.body)

			assert.Equal(t, http.StatusForbidden, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, "PERMISSION_DENIED", env.Error.Code)
		})
	}
}

func TestAPI_CreateShelf(t *testing.T) {
	fx := createTestAPI(t)
	fx.login("admin", adminCaller)

	fx.inventory.EXPECT().
		CreateShelf(mock.Anything, adminCaller, usecase.ShelfInput{Name: "A-01", Capacity: 2, Type: entity.DeviceTypeONU}).
		Return(&entity.Shelf{ID: "s1", Name: "A-01", Capacity: 2, Type: entity.DeviceTypeONU}, nil)

	rec, env := fx.do(t, http.MethodPost, "/api/v1/shelves", "admin", `{"name":"A-01","capacity":2,"type":"onu"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var shelf entity.Shelf
	require.NoError(t, json.Unmarshal(env.Data, &shelf))
	assert.Equal(t, "s1", shelf.ID)

	rec, env = fx.do(t, http.MethodPost, "/api/v1/shelves", "admin", `{"name":"A-01","capacity":0,"type":"onu"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Message, "capacity")
}

func TestAPI_AddDevices_CapacityExceeded(t *testing.T) {
	fx := createTestAPI(t)
	fx.login("operator", operatorCaller)

	fx.inventory.EXPECT().
		AddDevices(mock.Anything, operatorCaller, usecase.AddDevicesInput{RawIDs: "X3", ShelfID: "s1", Type: entity.DeviceTypeONU}).
		Return(nil, domainerrors.NewCapacityExceeded("A-01", 1, 0))

	rec, env := fx.do(t, http.MethodPost, "/api/v1/devices", "operator", `{"ids":"X3","shelf_id":"s1","type":"onu"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CAPACITY_EXCEEDED", env.Error.Code)
	assert.Equal(t, "A-01", env.Error.Details["shelf_name"])
	assert.InDelta(t, 0, env.Error.Details["available"], 0)
}

func TestAPI_AddDevices_InvalidType(t *testing.T) {
	fx := createTestAPI(t)
	fx.login("operator", operatorCaller)

	rec, env := fx.do(t, http.MethodPost, "/api/v1/devices", "operator", `{"ids":"X3","shelf_id":"s1","type":"router"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAPI_StoreFailureHidesDetails(t *testing.T) {
	fx := createTestAPI(t)
	fx.login("operator", operatorCaller)

	fx.inventory.EXPECT().
		MoveDevice(mock.Anything, operatorCaller, "X1", "s2").
		Return(nil, domainerrors.NewStoreCommitFailure(errors.New("deadline exceeded")).WithDetails("internal"))

	rec, env := fx.do(t, http.MethodPost, "/api/v1/devices/X1/move", "operator", `{"target_shelf_id":"s2"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "STORE_COMMIT_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Message, "deadline exceeded")
	assert.Nil(t, env.Error.Details)
}

func TestAPI_UnhandledErrorIsGeneric(t *testing.T) {
	fx := createTestAPI(t)
	fx.login("operator", operatorCaller)

	fx.catalog.EXPECT().GetDevice(mock.Anything, "X1").Return(nil, errors.New("boom"))

	rec, env := fx.do(t, http.MethodGet, "/api/v1/devices/X1", "operator", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, env.Error.Message, "boom")
}

func TestAPI_SearchDevices(t *testing.T) {
	fx := createTestAPI(t)
	fx.login("operator", operatorCaller)

	fx.catalog.EXPECT().
		SearchDevices(mock.Anything, repository.DeviceFilter{IDPrefix: "ZTE", Status: entity.DeviceStatusActive, Limit: 5}).
		Return([]*entity.Device{{ID: "ZTE1"}}, nil)

	rec, env := fx.do(t, http.MethodGet, "/api/v1/devices?prefix=ZTE&status=active&limit=5", "operator", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var devices []entity.Device
	require.NoError(t, json.Unmarshal(env.Data, &devices))
	require.Len(t, devices, 1)

	rec, env = fx.do(t, http.MethodGet, "/api/v1/devices?limit=many", "operator", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, _ = fx.do(t, http.MethodGet, "/api/v1/devices?status=lost", "operator", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_SetAdminClaim(t *testing.T) {
	fx := createTestAPI(t)
	fx.login("admin", adminCaller)

	rec, env := fx.do(t, http.MethodPut, "/api/v1/admin/users/u2/admin-claim", "admin", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	fx.admin.EXPECT().
		SetAdminClaim(mock.Anything, adminCaller, "u2", false).
		Return(&usecase.SetAdminClaimOutput{Success: true, Message: "admin rights revoked for u2"}, nil)

	rec, env = fx.do(t, http.MethodPut, "/api/v1/admin/users/u2/admin-claim", "admin", `{"is_admin":false}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"admin rights revoked for u2"}`, string(env.Data))
}

func TestAPI_SearchList(t *testing.T) {
	fx := createTestAPI(t)
	fx.login("operator", operatorCaller)

	fx.searchList.EXPECT().RemoveFromSearchList(mock.Anything, operatorCaller, []string{"X1", "X2"}).Return(nil)

	rec, env := fx.do(t, http.MethodDelete, "/api/v1/search-list", "operator", `{"ids":["X1","X2"]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"removed":2}`, string(env.Data))

	rec, _ = fx.do(t, http.MethodDelete, "/api/v1/search-list", "operator", `{"ids":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	fx.searchList.EXPECT().
		RetireSearchList(mock.Anything, operatorCaller).
		Return(nil, domainerrors.ErrBatchLimitExceeded.WithDetails(map[string]int{"writes": 600, "limit": 500}))

	rec, env = fx.do(t, http.MethodPost, "/api/v1/search-list/retire", "operator", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "BATCH_LIMIT_EXCEEDED", env.Error.Code)
	assert.InDelta(t, 500, env.Error.Details["limit"], 0)
}

func TestAPI_DeviceHistoryPDF(t *testing.T) {
	fx := createTestAPI(t)
	fx.login("operator", operatorCaller)

	fx.report.EXPECT().DeviceHistoryPDF(mock.Anything, "X1").Return([]byte("%PDF-1.3"), nil)

	rec, _ := fx.do(t, http.MethodGet, "/api/v1/devices/X1/history.pdf", "operator", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="X1-history.pdf"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "%PDF-1.3", rec.Body.String())
}

func TestAPI_MetricsRouteDisabledByDefault(t *testing.T) {
	fx := createTestAPI(t)

	rec, _ := fx.do(t, http.MethodGet, "/metrics", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
