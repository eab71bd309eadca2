package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Checkout outcomes recorded by ObserveCheckout.
const (
	CheckoutSuccess           = "success"
	CheckoutEmptyCart         = "empty_cart"
	CheckoutInsufficientStock = "insufficient_stock"
	CheckoutRateLimited       = "rate_limited"
	CheckoutFailed            = "error"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed.",
		},
	)

	checkoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_checkouts_total",
			Help: "Checkout attempts by outcome.",
		},
		[]string{"outcome"},
	)
	checkoutDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_checkout_duration_seconds",
			Help:    "Duration of checkout transactions in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)
	itemsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "store_items_sold_total",
			Help: "Units of stock sold through committed checkouts.",
		},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request metrics labelled by the matched route pattern.
// It must wrap the ServeMux directly so the pattern set by the mux is
// visible on the same request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		httpRequestsInFlight.Inc()

		rw := newResponseWriter(w)

		defer func() {
			pattern := r.Pattern
			if pattern == "" {
				pattern = "unmatched"
			}

			httpRequestsTotal.WithLabelValues(strconv.Itoa(rw.statusCode), r.Method, pattern).Inc()
			httpRequestsDuration.WithLabelValues(r.Method, pattern).Observe(time.Since(start).Seconds())
			httpRequestsInFlight.Dec()
		}()

		next.ServeHTTP(rw, r)
	})
}

// ObserveCheckout records one checkout attempt.
func ObserveCheckout(outcome string, duration time.Duration) {
	checkoutsTotal.WithLabelValues(outcome).Inc()
	checkoutDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// AddItemsSold counts units leaving stock in a committed checkout.
func AddItemsSold(units int) {
	itemsSold.Add(float64(units))
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
