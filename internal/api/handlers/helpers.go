package handlers

import (
	"net/http"

	"github.com/tokoretail/retail-platform/internal/errors"
	"github.com/tokoretail/retail-platform/internal/requestctx"
)

// resolveCustomer picks the customer a storefront request acts for. A
// session wins; a given id that contradicts it is forbidden. Without a
// session the given id is required.
func resolveCustomer(r *http.Request, given int64) (int64, error) {

	if sessionID, ok := requestctx.CustomerID(r.Context()); ok {
		if given != 0 && given != sessionID {
			return 0, errors.ForbiddenError("Session does not belong to this customer")
		}
		return sessionID, nil
	}

	if given <= 0 {
		return 0, errors.BadRequestError("customer_id is required")
	}

	return given, nil
}
