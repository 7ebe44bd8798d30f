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

// ShelfHandlerParams holds dependencies for ShelfHandler, injected by Fx.
type ShelfHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	CatalogUC   usecase.CatalogUsecase
	Logger      *slog.Logger
}

// ShelfHandler serves shelf CRUD and shelf labels.
type ShelfHandler struct {
	inventoryUC usecase.InventoryUsecase
	catalogUC   usecase.CatalogUsecase
	logger      *slog.Logger
}

// NewShelfHandler is the constructor for ShelfHandler
func NewShelfHandler(params ShelfHandlerParams) *ShelfHandler {
	return &ShelfHandler{
		inventoryUC: params.InventoryUC,
		catalogUC:   params.CatalogUC,
		logger:      params.Logger,
	}
}

// ShelfRequest is the body of shelf create and update.
type ShelfRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Capacity int    `json:"capacity" validate:"gt=0"`
	Type     string `json:"type" validate:"required,oneof=onu stb"`
}

func (r *ShelfRequest) toInput() usecase.ShelfInput {
	return usecase.ShelfInput{
		Name:     r.Name,
		Capacity: r.Capacity,
		Type:     entity.DeviceType(r.Type),
	}
}

// ResolveLabelRequest carries scanned label data.
type ResolveLabelRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// ListShelves handles GET /shelves?type=onu&with_space=true
func (h *ShelfHandler) ListShelves(c echo.Context) error {
	var typeParam string
	var withSpace bool
	if err := echo.QueryParamsBinder(c).
		String("type", &typeParam).
		Bool("with_space", &withSpace).
		BindError(); err != nil {
		return response.ValidationFailed(c, "invalid query parameters")
	}

	shelfType, ok := parseDeviceType(typeParam)
	if !ok {
		return response.ValidationFailed(c, "type must be one of: onu stb")
	}

	shelves, err := h.catalogUC.ListShelves(c.Request().Context(), repository.ShelfFilter{
		Type:          shelfType,
		WithSpaceOnly: withSpace,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shelves)
}

// GetShelf handles GET /shelves/:id
func (h *ShelfHandler) GetShelf(c echo.Context) error {
	shelf, err := h.catalogUC.GetShelf(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shelf)
}

// CreateShelf handles POST /shelves
func (h *ShelfHandler) CreateShelf(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ShelfRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	shelf, err := h.inventoryUC.CreateShelf(c.Request().Context(), caller, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, shelf)
}

// UpdateShelf handles PUT /shelves/:id
func (h *ShelfHandler) UpdateShelf(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ShelfRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.inventoryUC.UpdateShelf(c.Request().Context(), caller, c.Param("id"), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// DeleteShelf handles DELETE /shelves/:id
func (h *ShelfHandler) DeleteShelf(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.inventoryUC.DeleteShelf(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// ShelfLabel handles GET /shelves/:id/label.png
func (h *ShelfHandler) ShelfLabel(c echo.Context) error {
	png, err := h.catalogUC.ShelfLabel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveLabel handles POST /labels/resolve
func (h *ShelfHandler) ResolveLabel(c echo.Context) error {
	var req ResolveLabelRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	shelf, err := h.catalogUC.ResolveLabel(c.Request().Context(), req.Payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shelf)
}
