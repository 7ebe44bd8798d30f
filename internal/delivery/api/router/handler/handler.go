// Package handler contains the HTTP handlers of the inventory API.
package handler

import (
	"net/http"

	"inventory/internal/delivery/api/middleware"
	"inventory/internal/delivery/api/response"
	"inventory/internal/delivery/api/validator"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// callerFrom returns the authenticated caller set by the auth middleware.
func callerFrom(c echo.Context) (*entity.Caller, error) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	return caller, nil
}

// bindAndValidate binds the request into req and validates it.
// On failure it writes the 400 response and returns false.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.ValidationFailed(c, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return false, response.ValidationFailed(c, validator.Message(err))
	}

	return true, nil
}

// parseDeviceType accepts an empty value as "any".
func parseDeviceType(value string) (entity.DeviceType, bool) {
	if value == "" {
		return "", true
	}

	t := entity.DeviceType(value)

	return t, t.IsValid()
}
