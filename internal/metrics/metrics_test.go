package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("418", http.MethodGet, "GET /api/v1/products/{id}"))

	rr := httptest.NewRecorder()
	Middleware(mux).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products/12", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("418", http.MethodGet, "GET /api/v1/products/{id}"))
	assert.InDelta(t, 1, after-before, 0.0001)
	assert.InDelta(t, 0, testutil.ToFloat64(httpRequestsInFlight), 0.0001)
}

func TestObserveCheckout(t *testing.T) {
	before := testutil.ToFloat64(checkoutsTotal.WithLabelValues(CheckoutInsufficientStock))
	soldBefore := testutil.ToFloat64(itemsSold)

	ObserveCheckout(CheckoutInsufficientStock, 20*time.Millisecond)
	AddItemsSold(3)

	assert.InDelta(t, 1, testutil.ToFloat64(checkoutsTotal.WithLabelValues(CheckoutInsufficientStock))-before, 0.0001)
	assert.InDelta(t, 3, testutil.ToFloat64(itemsSold)-soldBefore, 0.0001)
}

func TestHandler(t *testing.T) {
	ObserveCheckout(CheckoutSuccess, time.Millisecond)

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "store_checkouts_total"))
}
