// Package admin guards operator endpoints with a shared token.
package admin

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
	"github.com/be1500616/zergoqrf/pkg/platform/httputil"
	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

const (
	TokenHeader   = "X-Admin-Token"
	ActorIDHeader = "X-Admin-Actor-ID"
)

type actorIDKey struct{}

// ActorID returns the operator named in X-Admin-Actor-ID, if any.
func ActorID(ctx context.Context) string {
	actor, _ := ctx.Value(actorIDKey{}).(string)
	return actor
}

// RequireAdminToken rejects requests whose X-Admin-Token does not match.
// An empty expected token disables the endpoints entirely.
func RequireAdminToken(expectedToken string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token := r.Header.Get(TokenHeader)
			if expectedToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
				logger.WarnContext(ctx, "admin token mismatch",
					"log_type", "security",
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Admin token required"))
				return
			}

			if actor := r.Header.Get(ActorIDHeader); actor != "" {
				ctx = context.WithValue(ctx, actorIDKey{}, actor)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
