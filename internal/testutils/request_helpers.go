package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/tokoretail/retail-platform/internal/requestctx"
)

// CreateTestRequestWithSession builds a request bound to a customer session.
func CreateTestRequestWithSession(method, target string, body io.Reader, customerID int64, pathParams map[string]string) *http.Request {
	req := CreateTestRequestWithoutSession(method, target, body, pathParams)

	return req.WithContext(requestctx.WithCustomerID(req.Context(), customerID))
}

func CreateTestRequestWithoutSession(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	ctx := requestctx.WithLogger(req.Context(), DiscardLogger())

	return req.WithContext(ctx)
}

// SessionContext returns a background context carrying a customer session.
func SessionContext(customerID int64) context.Context {
	return requestctx.WithCustomerID(context.Background(), customerID)
}

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
