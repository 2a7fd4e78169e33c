package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewDatabaseError_MapsSQLState(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		status int
		code   string
		is     func(error) bool
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, http.StatusConflict, CodeDuplicateEntry, IsUniqueConstraintViolationError},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, http.StatusBadRequest, CodeInvalidReference, IsForeignKeyConstraintError},
		{"invalid text representation", &pgconn.PgError{Code: "22P02"}, http.StatusBadRequest, CodeInvalidUUID, IsInvalidUUIDError},
		{"wrapped unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), http.StatusConflict, CodeDuplicateEntry, IsUniqueConstraintViolationError},
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, CodeNotFound, IsNotFound},
		{"other", errors.New("boom"), http.StatusInternalServerError, CodeInternal, func(err error) bool { return errors.Is(err, ErrDatabaseQuery) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := NewDatabaseError("find", "project", tt.cause)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.ErrorIs(t, apiErr.Cause, tt.cause)
			assert.True(t, tt.is(apiErr))
		})
	}
}

func TestApiErr_IsAndFullError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalErrorWithCause("failed to load vibes", cause)

	assert.True(t, IsInternal(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "failed to load vibes", err.Error())
	assert.Equal(t, "failed to load vibes -> connection refused", err.GetFullError())

	var apiErr *ApiErr
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestNewInvalidUUIDError(t *testing.T) {
	err := NewInvalidUUIDError("id", "not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, CodeInvalidUUID, err.Code)
	assert.Equal(t, "Invalid UUID format for parameter 'id'", err.Error())
	assert.True(t, IsInvalidUUIDError(err))
	assert.Equal(t, InvalidUUIDDetails{Param: "id", Received: "not-a-uuid", Expected: "UUID v4 format"}, err.Details)
}

func TestWithDetails_DoesNotMutateOriginal(t *testing.T) {
	base := NewNotFoundError("Project not found")
	withID := base.WithDetails(map[string]string{"id": "abc"})

	assert.Nil(t, base.Details)
	assert.Equal(t, map[string]string{"id": "abc"}, withID.Details)
	assert.True(t, IsNotFound(withID))
}

func TestAuthAndRateLimitErrors(t *testing.T) {
	missing := NewMissingTokenError()
	assert.Equal(t, http.StatusUnauthorized, missing.StatusCode)
	assert.Equal(t, CodeUnauthorized, missing.Code)
	assert.Equal(t, "missing access token", missing.Error())
	assert.True(t, IsInvalidTokenError(missing))

	invalid := NewInvalidTokenError(errors.New("token is expired"))
	assert.True(t, IsInvalidTokenError(invalid))
	assert.Equal(t, "invalid access token -> token is expired", invalid.GetFullError())

	limited := NewRateLimitExceededError("60 seconds")
	assert.Equal(t, http.StatusTooManyRequests, limited.StatusCode)
	assert.Equal(t, map[string]string{"retryAfter": "60 seconds"}, limited.Details)
	assert.True(t, IsRateLimitExceededError(limited))
	assert.False(t, IsRateLimitExceededError(missing))
}
