package utils

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	appErrors "github.com/tokoretail/retail-platform/internal/errors"
	"github.com/tokoretail/retail-platform/internal/requestctx"
	"github.com/tokoretail/retail-platform/internal/utils/response"
)

// ParseAndValidate decodes the JSON body into dest and validates it, writing
// the error response itself when either step fails.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	logger := requestctx.Logger(r.Context())

	if err := DecodeJSONBody(w, r, dest); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		response.Error(w, appErrors.BadRequestError(err.Error()))
		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
			return false
		}

		response.Error(w, appErrors.ValidationError("Invalid input data"))
		return false
	}

	return true
}

// PathID parses a path id, writing a 400 response when it is invalid.
func PathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := ParseID(r, name)
	if err != nil {
		response.Error(w, appErrors.BadRequestError("Invalid "+name))
		return 0, false
	}

	return id, true
}
