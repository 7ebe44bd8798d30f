package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "inventory/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// headerCloudTrace is set by Cloud Run on every inbound request, including
// Pub/Sub pushes that never carry X-Request-Id.
const headerCloudTrace = "X-Cloud-Trace-Context"

// RequestIDMiddleware tags each request with an id and a request-scoped logger
// that the use cases pick up from the context.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process resolves the request id (client header, then Cloud Run trace, then a
// fresh uuid) and stores it with a child logger on the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		requestID := req.Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = traceID(req.Header.Get(headerCloudTrace))
		}
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(
			slog.String("request_id", requestID),
			slog.String("method", req.Method),
			slog.String("route", c.Path()),
		)

		ctx := deliverycontext.WithRequestID(req.Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// traceID extracts TRACE_ID from "TRACE_ID/SPAN_ID;o=OPTIONS".
func traceID(header string) string {
	id, _, _ := strings.Cut(header, "/")
	id, _, _ = strings.Cut(id, ";")

	return strings.TrimSpace(id)
}
