// Package postgres contains the concrete implementation of the persistence
// layer using GORM and PostgreSQL.
package postgres

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	domainerrors "spotter/internal/domain/errors"
)

// operation names the CRUD verb for error messages.
type operation string

const (
	opCreate operation = "create"
	opRead   operation = "read"
	opUpdate operation = "update"
	opDelete operation = "delete"
)

// translateError maps a storage-engine failure to an application error with
// a fixed HTTP status and a message parameterized by the resource name and
// operation. It is total: unmapped driver errors fall back to a generic 500
// wrapper, so no raw driver error ever crosses this boundary.
func translateError(err error, op operation, resource string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainerrors.New(
			fmt.Sprintf("The %s you are trying to %s could not be found.", resource, op), 404)

	case errors.Is(err, gorm.ErrDuplicatedKey):
		switch op {
		case opCreate:
			return domainerrors.New(
				fmt.Sprintf("A %s with the same unique field already exists. Please use a different value.", resource), 409)
		case opUpdate:
			return domainerrors.New(
				fmt.Sprintf("The new value conflicts with an existing %s.", resource), 409)
		default:
			return domainerrors.New(
				fmt.Sprintf("Unique constraint violation on %s.", resource), 409)
		}

	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domainerrors.New(
			fmt.Sprintf("Unable to %s the %s because related data is invalid or missing.", op, resource), 400)

	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return domainerrors.New(
			fmt.Sprintf("The provided value for the %s is invalid. Please correct it.", resource), 400)

	case isNotNullViolation(err):
		return domainerrors.New(
			fmt.Sprintf("A required field on the %s is missing. Please provide it to continue.", resource), 400)

	default:
		return domainerrors.NewDatabaseExecuteError(err,
			fmt.Sprintf("Database error during %s %s", resource, op))
	}
}

// isNotNullViolation matches PostgreSQL not-null constraint failures, which
// GORM does not surface as a typed error.
func isNotNullViolation(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "null value") ||
		strings.Contains(msg, "not null") ||
		strings.Contains(msg, "23502") // PostgreSQL not_null_violation error code
}
