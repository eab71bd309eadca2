// Package requestctx carries request-scoped values (the logger and the
// customer session) across the HTTP, service and storage layers.
package requestctx

import (
	"context"
	"log/slog"

	"github.com/tokoretail/retail-platform/internal/errors"
)

type contextKey int

const (
	loggerKey contextKey = iota
	customerKey
)

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger returns the request-scoped logger, or slog.Default outside a request.
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}

	return slog.Default()
}

// WithCustomerID binds a customer session to ctx.
func WithCustomerID(ctx context.Context, customerID int64) context.Context {
	return context.WithValue(ctx, customerKey, customerID)
}

// CustomerID returns the customer bound to the request session.
func CustomerID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(customerKey).(int64)
	return id, ok
}

// AuthorizeCustomer returns a Forbidden error when the request carries a
// session for a different customer than the one being acted on.
func AuthorizeCustomer(ctx context.Context, customerID int64) error {
	sessionID, ok := CustomerID(ctx)
	if ok && sessionID != customerID {
		return errors.ForbiddenError("Session does not belong to this customer")
	}

	return nil
}
