package roleauth

import (
	"context"
)

// Context keys for roleauth values.
type contextKey string

const (
	contextKeyRequestID contextKey = "roleauth:request_id"
)

// WithRequestID adds a request ID to the context (for log correlation).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// GetRequestID retrieves the request ID from context.
// Returns empty string if not set.
func GetRequestID(ctx context.Context) string {
	if v := ctx.Value(contextKeyRequestID); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
