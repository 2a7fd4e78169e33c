package errs

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDatabaseQuery = errors.New("database query failed")
)

// Database & Storage Specific Errors
var (
	ErrUniqueConstraintViolation = errors.New("unique constraint violation")
	ErrForeignKeyConstraint      = errors.New("foreign key constraint violation")
	ErrTransactionFailed         = errors.New("transaction failed")
)

// PostgreSQL SQLSTATE codes the API maps to client errors
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRepr     = "22P02"
)

// NewDatabaseError creates a new database error with details about the operation
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if errors.Is(cause, gorm.ErrRecordNotFound) {
		return &ApiErr{
			StatusCode: http.StatusNotFound,
			Code:       CodeNotFound,
			Message:    fmt.Sprintf("%s not found", entity),
			err:        ErrNotFound,
			Cause:      cause,
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(cause, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &ApiErr{
				StatusCode: http.StatusConflict,
				Code:       CodeDuplicateEntry,
				Message:    "Resource already exists",
				err:        ErrUniqueConstraintViolation,
				Cause:      cause,
			}
		case pgForeignKeyViolation:
			return &ApiErr{
				StatusCode: http.StatusBadRequest,
				Code:       CodeInvalidReference,
				Message:    "Referenced resource does not exist",
				err:        ErrForeignKeyConstraint,
				Cause:      cause,
			}
		case pgInvalidTextRepr:
			return &ApiErr{
				StatusCode: http.StatusBadRequest,
				Code:       CodeInvalidUUID,
				Message:    "Invalid UUID format",
				err:        ErrInvalidUUID,
				Cause:      cause,
			}
		}
	}

	// Generic database error
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternal,
		Message:    "An unexpected error occurred",
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

func NewTransactionFailedError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternal,
		Message:    fmt.Sprintf("Transaction failed during %s", operation),
		err:        ErrTransactionFailed,
		Cause:      cause,
	}
}

func IsUniqueConstraintViolationError(err error) bool {
	return errors.Is(err, ErrUniqueConstraintViolation)
}

func IsForeignKeyConstraintError(err error) bool {
	return errors.Is(err, ErrForeignKeyConstraint)
}

func IsTransactionFailedError(err error) bool {
	return errors.Is(err, ErrTransactionFailed)
}
