package handler

import (
	"net/http"

	"inventory/internal/delivery/api/response"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchListHandlerParams holds dependencies for SearchListHandler, injected by Fx.
type SearchListHandlerParams struct {
	fx.In

	SearchListUC usecase.SearchListUsecase
}

// SearchListHandler serves the caller's search list.
type SearchListHandler struct {
	searchListUC usecase.SearchListUsecase
}

// NewSearchListHandler is the constructor for SearchListHandler
func NewSearchListHandler(params SearchListHandlerParams) *SearchListHandler {
	return &SearchListHandler{searchListUC: params.SearchListUC}
}

// AddToSearchListRequest carries free-text device ids.
type AddToSearchListRequest struct {
	IDs string `json:"ids" validate:"required"`
}

// RemoveFromSearchListRequest carries the ids to unflag.
type RemoveFromSearchListRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// GetSearchList handles GET /search-list
func (h *SearchListHandler) GetSearchList(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	devices, err := h.searchListUC.GetSearchList(c.Request().Context(), caller)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// AddToSearchList handles POST /search-list
func (h *SearchListHandler) AddToSearchList(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddToSearchListRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	devices, err := h.searchListUC.AddToSearchList(c.Request().Context(), caller, req.IDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// RemoveFromSearchList handles DELETE /search-list
func (h *SearchListHandler) RemoveFromSearchList(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RemoveFromSearchListRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.searchListUC.RemoveFromSearchList(c.Request().Context(), caller, req.IDs); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"removed": len(req.IDs)})
}

// RetireSearchList handles POST /search-list/retire
func (h *SearchListHandler) RetireSearchList(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	devices, err := h.searchListUC.RetireSearchList(c.Request().Context(), caller)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}
