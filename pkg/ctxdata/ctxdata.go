// Package ctxdata carries request-scoped tracing and caller identity between
// transport middleware, services and the logger.
package ctxdata

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type traceIDKey struct{}
type callerKey struct{}

// Caller is the authenticated user behind a request. Role is kept as the raw
// wire value; callers validate it against their own role set.
type Caller struct {
	UserID uuid.UUID
	Role   string
}

// ParseCaller builds a Caller from transport strings such as the X-User-Id
// and X-User-Role headers or their gRPC metadata equivalents.
func ParseCaller(rawID, role string) (Caller, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return Caller{}, fmt.Errorf("invalid user id: %w", err)
	}
	if id == uuid.Nil {
		return Caller{}, fmt.Errorf("invalid user id: nil uuid")
	}
	if role == "" {
		return Caller{}, fmt.Errorf("missing user role")
	}
	return Caller{UserID: id, Role: role}, nil
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

func TraceID(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(traceIDKey{}).(string)
	return traceID, ok && traceID != ""
}

func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

func CallerFrom(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(Caller)
	if !ok || caller.UserID == uuid.Nil {
		return Caller{}, false
	}
	return caller, true
}
