package api

import (
	"context"
)

type keyType string

const (
	requestIDKey    keyType = "requestID"
	adminSubjectKey keyType = "adminSubject"
)

// ctxWithRequestID adds the request ID to the context
func ctxWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request ID, or "" outside a request
func RequestIDFromContext(ctx context.Context) string {
	return ctxGetStringValue(ctx, requestIDKey)
}

// ctxWithAdminSubject adds the authenticated admin's token subject to the context
func ctxWithAdminSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, adminSubjectKey, subject)
}

func ctxGetAdminSubject(ctx context.Context) string {
	return ctxGetStringValue(ctx, adminSubjectKey)
}

// ctxGetStringValue is a helper function to retrieve string values from the context by key
func ctxGetStringValue(ctx context.Context, key keyType) string {
	if value, ok := ctx.Value(key).(string); ok {
		return value
	}
	return ""
}
