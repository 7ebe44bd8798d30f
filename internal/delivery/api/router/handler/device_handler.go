package handler

import (
	"log/slog"
	"net/http"

	"inventory/internal/delivery/api/response"
	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	CatalogUC   usecase.CatalogUsecase
	ReportUC    usecase.ReportUsecase
	Logger      *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	inventoryUC usecase.InventoryUsecase
	catalogUC   usecase.CatalogUsecase
	reportUC    usecase.ReportUsecase
	logger      *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		inventoryUC: params.InventoryUC,
		catalogUC:   params.CatalogUC,
		reportUC:    params.ReportUC,
		logger:      params.Logger,
	}
}

// AddDevicesRequest represents the request body for placing devices on a shelf
type AddDevicesRequest struct {
	// IDs is free text; ids are separated by whitespace, commas or semicolons.
	IDs     string `json:"ids" validate:"required"`
	ShelfID string `json:"shelf_id" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=onu stb"`
}

// MoveDeviceRequest represents the request body for moving a device
type MoveDeviceRequest struct {
	TargetShelfID string `json:"target_shelf_id" validate:"required"`
}

// AddDevices handles POST /devices
func (h *DeviceHandler) AddDevices(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddDevicesRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.inventoryUC.AddDevices(c.Request().Context(), caller, usecase.AddDevicesInput{
		RawIDs:  req.IDs,
		ShelfID: req.ShelfID,
		Type:    entity.DeviceType(req.Type),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// SearchDevices handles GET /devices?prefix=&shelf_id=&status=&type=&limit=
func (h *DeviceHandler) SearchDevices(c echo.Context) error {
	var prefix, shelfID, status, typeParam string
	var limit int
	if err := echo.QueryParamsBinder(c).
		String("prefix", &prefix).
		String("shelf_id", &shelfID).
		String("status", &status).
		String("type", &typeParam).
		Int("limit", &limit).
		BindError(); err != nil {
		return response.ValidationFailed(c, "invalid query parameters")
	}

	deviceType, ok := parseDeviceType(typeParam)
	if !ok {
		return response.ValidationFailed(c, "type must be one of: onu stb")
	}
	deviceStatus := entity.DeviceStatus(status)
	if status != "" && !deviceStatus.IsValid() {
		return response.ValidationFailed(c, "status must be one of: active removed")
	}

	devices, err := h.catalogUC.SearchDevices(c.Request().Context(), repository.DeviceFilter{
		IDPrefix: prefix,
		ShelfID:  shelfID,
		Status:   deviceStatus,
		Type:     deviceType,
		Limit:    limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// GetDevice handles GET /devices/:id
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	device, err := h.catalogUC.GetDevice(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// DeleteDevice handles DELETE /devices/:id
func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.inventoryUC.DeleteDevice(c.Request().Context(), caller, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device deleted successfully"})
}

// MoveDevice handles POST /devices/:id/move
func (h *DeviceHandler) MoveDevice(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req MoveDeviceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	device, err := h.inventoryUC.MoveDevice(c.Request().Context(), caller, c.Param("id"), req.TargetShelfID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// RetireDevice handles POST /devices/:id/retire
func (h *DeviceHandler) RetireDevice(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.inventoryUC.RetireDevice(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// RestoreDevice handles POST /devices/:id/restore
func (h *DeviceHandler) RestoreDevice(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.inventoryUC.RestoreDevice(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// ListMoveTargets handles GET /devices/:id/move-targets
func (h *DeviceHandler) ListMoveTargets(c echo.Context) error {
	shelves, err := h.catalogUC.ListMoveTargets(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shelves)
}

// DeviceHistoryPDF handles GET /devices/:id/history.pdf
func (h *DeviceHandler) DeviceHistoryPDF(c echo.Context) error {
	deviceID := c.Param("id")

	pdf, err := h.reportUC.DeviceHistoryPDF(c.Request().Context(), deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Attachment(c, "application/pdf", deviceID+"-history.pdf", pdf)
}
