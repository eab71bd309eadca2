package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeInvalidArgument = "INVALID_ARGUMENT"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeDatabaseError   = "DATABASE_ERROR"
	ErrCodeDuplicateEntry  = "DUPLICATE_ENTRY"
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"
	ErrCodeThirdPartyError = "THIRD_PARTY_ERROR"
)

// Postgres SQLSTATE codes the services react to.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

// InvalidArgumentError reports a client-correctable precondition failure.
func InvalidArgumentError(message string) *AppError {
	return NewAppError(ErrCodeInvalidArgument, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, http.StatusForbidden)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func DatabaseError(message string) *AppError {
	return NewAppError(ErrCodeDatabaseError, message, http.StatusInternalServerError)
}

func DuplicateEntryError(message string) *AppError {
	return NewAppError(ErrCodeDuplicateEntry, message, http.StatusConflict)
}

func TooManyRequestsError(message string) *AppError {
	return NewAppError(ErrCodeTooManyRequests, message, http.StatusTooManyRequests)
}

func ThirdPartyError(message string) *AppError {
	return NewAppError(ErrCodeThirdPartyError, message, http.StatusInternalServerError)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}

// FromStorage classifies a write failure coming from the CRUD repositories.
// Constraint violations the caller can fix become 4xx errors; everything else
// is reported as a database error carrying the message given.
func FromStorage(err error, message string) *AppError {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return DuplicateEntryError("Resource already exists").WithDetail(pqErr.Constraint).WithError(err)
		case pqForeignKeyViolation:
			return InvalidArgumentError("Referenced resource does not exist").WithDetail(pqErr.Constraint).WithError(err)
		case pqCheckViolation:
			return InvalidArgumentError("Value violates a constraint").WithDetail(pqErr.Constraint).WithError(err)
		}
	}

	return DatabaseError(message).WithError(err)
}
