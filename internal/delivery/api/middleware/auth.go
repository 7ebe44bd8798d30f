package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware verifies identity tokens and enforces the admin claim.
type AuthMiddleware struct {
	identity service.IdentityProvider
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityProvider) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// Authenticate verifies the Bearer token and stores the caller on the context.
// Failures are returned as AppErrors so the central error handler renders them.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithMessage("authorization header is missing")
		}

		token, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(token) == "" {
			return domainerrors.ErrUnauthenticated.WithMessage("invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()
		caller, err := m.identity.VerifyToken(ctx, strings.TrimSpace(token))
		if err != nil {
			return domainerrors.ErrUnauthenticated.WithMessage("invalid or expired token").WithCause(err)
		}

		deliverycontext.SetCaller(c, caller)

		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("uid", caller.UID)))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequireAdmin rejects callers without the admin claim.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, ok := GetCaller(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}
		if !caller.IsAdmin {
			return domainerrors.ErrPermissionDenied
		}

		return next(c)
	}
}

// GetCaller returns the caller set by Authenticate.
func GetCaller(c echo.Context) (*entity.Caller, bool) {
	return deliverycontext.GetCaller(c)
}
