package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried in the response envelope
const (
	CodeInvalidUUID       = "INVALID_UUID"
	CodeNotFound          = "NOT_FOUND"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeDuplicateEntry    = "DUPLICATE_ENTRY"
	CodeInvalidReference  = "INVALID_REFERENCE"
	CodeBadRequest        = "BAD_REQUEST"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	CodeInternal          = "INTERNAL_SERVER_ERROR"
)

// Common error sentinel values
var (
	ErrBadRequest       = errors.New("malformed request")
	ErrInternal         = errors.New("internal server error")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrCORSBlocked      = errors.New("request blocked by CORS policy")
)

type ApiErr struct {
	StatusCode int
	Code       string
	Message    string // Client-facing message; falls back to the sentinel text
	err        error
	Details    any   // Extra context rendered into the envelope
	Cause      error // The underlying cause of the error
}

// implements error interface. this allows us to pass an instance of ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.err.Error()
}

// GetFullError returns a recursive error message including all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		var apiErr *ApiErr
		if errors.As(e.Cause, &apiErr) {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

// WithDetails returns a copy of the error carrying the given details
func (e *ApiErr) WithDetails(details any) *ApiErr {
	clone := *e
	clone.Details = details
	return &clone
}

// Common error constructors with appropriate HTTP status codes
func NewNotFoundError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, Code: CodeNotFound, Message: message, err: ErrNotFound}
}

func NewBadRequestError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, Code: CodeBadRequest, Message: message, err: ErrBadRequest}
}

func NewInternalErrorWithCause(message string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternal,
		Message:    message,
		err:        ErrInternal,
		Cause:      cause,
	}
}

func NewMethodNotAllowedError(method, path string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusMethodNotAllowed,
		Code:       CodeMethodNotAllowed,
		Message:    fmt.Sprintf("Method %s not allowed on %s", method, path),
		err:        ErrMethodNotAllowed,
		Details:    map[string]string{"method": method, "path": path},
	}
}

// NewRouteNotFoundError is returned for paths no route matches
func NewRouteNotFoundError(method, path string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("Route %s %s not found", method, path),
		err:        ErrNotFound,
		Details:    map[string]string{"method": method, "path": path},
	}
}

func NewCORSError(origin string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		Code:       CodeBadRequest,
		err:        ErrCORSBlocked,
		Details:    fmt.Sprintf("Origin '%s' is not allowed by CORS policy", origin),
	}
}

func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
