// Package requestcontext stores request-scoped values shared by middleware,
// handlers and services.
package requestcontext

import (
	"context"
	"time"

	"github.com/be1500616/zergoqrf/internal/auth/models"
)

type (
	requestIDKey   struct{}
	clientIPKey    struct{}
	userAgentKey   struct{}
	userContextKey struct{}
	requestTimeKey struct{}
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request id or "" outside an HTTP request.
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey{}).(string)
	return v
}

// WithClientMetadata records the resolved client address and user agent.
func WithClientMetadata(ctx context.Context, ip, userAgent string) context.Context {
	ctx = context.WithValue(ctx, clientIPKey{}, ip)
	return context.WithValue(ctx, userAgentKey{}, userAgent)
}

func ClientIP(ctx context.Context) string {
	v, _ := ctx.Value(clientIPKey{}).(string)
	return v
}

func UserAgent(ctx context.Context) string {
	v, _ := ctx.Value(userAgentKey{}).(string)
	return v
}

// WithUserContext stores the authenticated principal.
func WithUserContext(ctx context.Context, uc *models.UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, uc)
}

// UserContext returns the authenticated principal, or nil.
func UserContext(ctx context.Context) *models.UserContext {
	v, _ := ctx.Value(userContextKey{}).(*models.UserContext)
	return v
}

// WithTime pins the clock for everything that runs under ctx. Workers and
// tests use it to evaluate a batch against a single instant.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}

// Now returns the instant captured when the request started, or the wall
// clock outside a request.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}
