package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "inventory/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	testCases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "client id wins",
			headers: map[string]string{"X-Request-Id": "client-1", headerCloudTrace: "abc123/1;o=1"},
			want:    "client-1",
		},
		{
			name:    "cloud run trace",
			headers: map[string]string{headerCloudTrace: "abc123/987;o=1"},
			want:    "abc123",
		},
		{
			name:    "trace without span",
			headers: map[string]string{headerCloudTrace: "abc123;o=1"},
			want:    "abc123",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var fromCtx string
			e := echo.New()
			e.Use(NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).Process)
			e.GET("/shelves", func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))
				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/shelves", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, tc.want, fromCtx)
		})
	}
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	e.Use(NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).Process)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}
