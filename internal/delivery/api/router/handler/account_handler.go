package handler

import (
	"net/http"

	"inventory/internal/delivery/api/response"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	AdminUC   usecase.AdminUsecase
}

// AccountHandler serves the caller's profile and admin claim management.
type AccountHandler struct {
	profileUC usecase.ProfileUsecase
	adminUC   usecase.AdminUsecase
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		profileUC: params.ProfileUC,
		adminUC:   params.AdminUC,
	}
}

// AdminClaimRequest sets or clears the admin claim of a user.
type AdminClaimRequest struct {
	IsAdmin *bool `json:"is_admin" validate:"required"`
}

// GetProfile handles GET /profile
func (h *AccountHandler) GetProfile(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), caller)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// SetAdminClaim handles PUT /admin/users/:uid/admin-claim
func (h *AccountHandler) SetAdminClaim(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AdminClaimRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.adminUC.SetAdminClaim(c.Request().Context(), caller, c.Param("uid"), *req.IsAdmin)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
