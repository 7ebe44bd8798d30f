// Package metrics exposes workflow and HTTP metrics to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"inventory/config"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/service"
	"inventory/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const (
	metricPrefix = "inventory_"

	resultSuccess = "success"
	resultError   = "error"

	defaultPath = "/metrics"
)

// Recorder implements service.OperationRecorder on a dedicated registry.
type Recorder struct {
	registry *prometheus.Registry

	operationsTotal  *prometheus.CounterVec
	operationLatency *prometheus.HistogramVec
	devicesAffected  *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpLatency      *prometheus.HistogramVec
}

// NewRecorder registers every collector on a new registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "operations_total",
				Help: "Total inventory operations by operation and result",
			},
			[]string{"operation", "result"},
		),
		operationLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "operation_latency_seconds",
				Help:    "Inventory operation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		devicesAffected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "devices_affected_total",
				Help: "Total devices changed by committed operations",
			},
			[]string{"operation"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_latency_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.operationsTotal,
		r.operationLatency,
		r.devicesAffected,
		r.httpRequests,
		r.httpLatency,
	)

	return r
}

// Observe implements service.OperationRecorder. Failed operations are labeled
// with their error code so capacity and duplicate rejections stay distinguishable.
func (r *Recorder) Observe(operation string, err error, elapsed time.Duration) {
	r.operationsTotal.WithLabelValues(operation, resultLabel(err)).Inc()
	if elapsed > 0 {
		r.operationLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
	}
}

// DevicesAffected implements service.OperationRecorder.
func (r *Recorder) DevicesAffected(operation string, count int) {
	if count <= 0 {
		return
	}
	r.devicesAffected.WithLabelValues(operation).Add(float64(count))
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Middleware records one sample per HTTP request, labeled by route template.
func (r *Recorder) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		// Errors are rendered after the chain returns, so derive the status here.
		status := c.Response().Status
		if err != nil {
			status = http.StatusInternalServerError

			var appErr domainerrors.AppError
			var httpErr *echo.HTTPError
			switch {
			case errors.As(err, &appErr):
				status = appErr.HTTPCode()
			case errors.As(err, &httpErr):
				status = httpErr.Code
			}
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		r.httpRequests.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
		r.httpLatency.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())

		return err
	}
}

func resultLabel(err error) string {
	if err == nil {
		return resultSuccess
	}
	if appErr := domainerrors.AsAppError(err, domainerrors.ErrInternalError); appErr != nil && appErr.ErrorCode() != "" {
		return appErr.ErrorCode()
	}

	return resultError
}

// Path returns the configured metrics path.
func Path(cfg *config.Config) string {
	if cfg.Metrics == nil || cfg.Metrics.Path == "" {
		return defaultPath
	}

	return cfg.Metrics.Path
}

// Enabled reports whether the metrics endpoint is served.
func Enabled(cfg *config.Config) bool {
	return cfg.Metrics != nil && cfg.Metrics.Enabled
}

// Module provides the Recorder as the OperationRecorder.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRecorder,
		func(r *Recorder) service.OperationRecorder { return r },
	),
)
