// Package metrics exposes Prometheus metrics for the HTTP surface and
// the transformation core.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skycoord_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skycoord_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	transformsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skycoord_transforms_total",
			Help: "Frame transformations applied, by transformation name.",
		},
		[]string{"transformation"},
	)

	parseErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skycoord_angle_parse_errors_total",
			Help: "Sexagesimal angle strings rejected by the parser.",
		},
		[]string{"format"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
	prometheus.MustRegister(transformsTotal)
	prometheus.MustRegister(parseErrorsTotal)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveTransform counts one applied transformation.
func ObserveTransform(name string) {
	transformsTotal.WithLabelValues(name).Inc()
}

// IncParseError counts one rejected angle string ("dms" or "hms").
func IncParseError(format string) {
	parseErrorsTotal.WithLabelValues(format).Inc()
}

// knownRoutes are the label values HTTP metrics may carry. Anything
// else collapses to "other" to keep bot scans from exploding label
// cardinality.
var knownRoutes = map[string]bool{
	"/":                  true,
	"/healthz":           true,
	"/readyz":            true,
	"/metrics":           true,
	"/api/v1/transform":  true,
	"/api/v1/separation": true,
	"/api/v1/parse":      true,
	"/api/v1/transforms": true,
}

// normalizeRoute maps a request path to a bounded label set.
func normalizeRoute(path string) string {
	if knownRoutes[path] {
		return path
	}
	// Tolerate a single trailing slash on known routes.
	if trimmed := strings.TrimSuffix(path, "/"); trimmed != "" && knownRoutes[trimmed] {
		return trimmed
	}
	return "other"
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration for each request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		route := normalizeRoute(r.URL.Path)
		code := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(route, r.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(route, r.Method).Observe(duration)
	})
}
