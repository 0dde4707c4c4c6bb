package request //import "github.com/Xunop/gutenshelf/internal/http/request"

import (
	"context"
	"net/http"
)

type ContextKey int

const (
	ClientIPContextKey ContextKey = iota
	RequestIDContextKey
)

func getContextStringValue(r *http.Request, key ContextKey) string {
	if v := r.Context().Value(key); v != nil {
		if value, valid := v.(string); valid {
			return value
		}
	}
	return ""
}

// ClientIP returns the client IP address stored in the context.
func ClientIP(r *http.Request) string {
	return getContextStringValue(r, ClientIPContextKey)
}

// RequestID returns the request id stored in the context.
func RequestID(r *http.Request) string {
	return getContextStringValue(r, RequestIDContextKey)
}

// WithValue returns a shallow copy of r carrying value under key.
func WithValue(r *http.Request, key ContextKey, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), key, value))
}
