package service

import (
	"database/sql"
	stdErrors "errors"

	"github.com/tokoretail/retail-platform/internal/errors"
	repository "github.com/tokoretail/retail-platform/internal/repositories"
)

// readError maps a repository read failure for a single entity.
func readError(err error, entity string) *errors.AppError {
	if stdErrors.Is(err, sql.ErrNoRows) {
		return errors.NotFoundError(entity + " not found").WithError(err)
	}

	return errors.DatabaseError("Failed to fetch " + entity).WithError(err)
}

// writeError maps a repository write failure, classifying constraint
// violations the caller can correct.
func writeError(err error, entity, action string) *errors.AppError {
	switch {
	case stdErrors.Is(err, sql.ErrNoRows):
		return errors.NotFoundError(entity + " not found").WithError(err)
	case stdErrors.Is(err, repository.ErrNoFieldsToUpdate):
		return errors.InvalidArgumentError("No fields to update").WithError(err)
	default:
		return errors.FromStorage(err, "Failed to "+action+" "+entity)
	}
}
