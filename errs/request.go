package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Request & Input-Validation Errors
var (
	ErrInvalidUUID       = errors.New("invalid UUID")
	ErrInvalidField      = errors.New("invalid field")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrMissingToken      = errors.New("missing access token")
	ErrInvalidToken      = errors.New("invalid access token")
)

// InvalidUUIDDetails describes a rejected path parameter
type InvalidUUIDDetails struct {
	Param    string `json:"param"`
	Received string `json:"received"`
	Expected string `json:"expected"`
}

func NewInvalidUUIDError(param, received string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		Code:       CodeInvalidUUID,
		Message:    fmt.Sprintf("Invalid UUID format for parameter '%s'", param),
		err:        ErrInvalidUUID,
		Details: InvalidUUIDDetails{
			Param:    param,
			Received: received,
			Expected: "UUID v4 format",
		},
	}
}

func NewInvalidFieldError(fieldName string, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		Code:       CodeBadRequest,
		Message:    fmt.Sprintf("Invalid field %s: %s", fieldName, reason),
		err:        ErrInvalidField,
		Details:    map[string]string{"field": fieldName},
	}
}

func NewRateLimitExceededError(retryAfter string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusTooManyRequests,
		Code:       CodeRateLimitExceeded,
		Message:    "Too many requests from this IP, please try again later.",
		err:        ErrRateLimitExceeded,
		Details:    map[string]string{"retryAfter": retryAfter},
	}
}

// Authentication Error Constructors
func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		Code:       CodeUnauthorized,
		err:        ErrMissingToken,
	}
}

func NewInvalidTokenError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		Code:       CodeUnauthorized,
		err:        ErrInvalidToken,
		Cause:      cause,
	}
}

func IsInvalidUUIDError(err error) bool {
	return errors.Is(err, ErrInvalidUUID)
}

func IsRateLimitExceededError(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}

func IsInvalidTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrMissingToken)
}
