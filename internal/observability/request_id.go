package observability

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	RequestIDKey    contextKey = "request_id"
	RequestIDHeader            = "X-Request-ID"

	// Longer inbound IDs are replaced rather than echoed.
	maxRequestIDLength = 128
)

func NewRequestID() string {
	return uuid.New().String()
}

// requestIDFromHeader keeps a caller-supplied ID when it is usable.
func requestIDFromHeader(v string) string {
	if v == "" || len(v) > maxRequestIDLength {
		return NewRequestID()
	}
	for _, c := range v {
		if c < 0x21 || c > 0x7e {
			return NewRequestID()
		}
	}
	return v
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(RequestIDKey).(string)
	if !ok {
		return ""
	}
	return id
}
