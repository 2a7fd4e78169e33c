package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rpupo63/chameleon-site/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger     zerolog.Logger
	production bool
}

// NewResponder creates a Responder. In production, details of internal
// errors are withheld from clients.
func NewResponder(logger zerolog.Logger, production bool) Responder {
	return Responder{logger: logger, production: production}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.writeJSON(w, http.StatusOK, data)
}

func (r Responder) writeJSON(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteText writes a non-JSON body with the given content type
func (r Responder) WriteText(w http.ResponseWriter, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write([]byte(body)); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return generic internal error
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		body := ErrorBody{Code: errs.CodeInternal, Message: "An unexpected error occurred"}
		if !r.production {
			body.Details = err.Error()
		}
		r.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: body})
		return
	}

	status := apiErr.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	body := ErrorBody{
		Code:    apiErr.Code,
		Message: apiErr.Error(),
		Details: apiErr.Details,
	}
	if body.Code == "" {
		body.Code = codeForStatus(status)
	}

	if status >= http.StatusInternalServerError {
		r.logger.Error().Str("code", body.Code).Str("cause", apiErr.GetFullError()).Msg("internal error")
		switch {
		case r.production:
			body.Details = nil
		case apiErr.Cause != nil:
			body.Details = map[string]any{"details": apiErr.Details, "cause": apiErr.GetFullError()}
		}
	}

	r.writeJSON(w, status, ErrorResponse{Error: body})
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return errs.CodeNotFound
	case http.StatusBadRequest:
		return errs.CodeBadRequest
	case http.StatusUnauthorized:
		return errs.CodeUnauthorized
	case http.StatusTooManyRequests:
		return errs.CodeRateLimitExceeded
	default:
		return errs.CodeInternal
	}
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
