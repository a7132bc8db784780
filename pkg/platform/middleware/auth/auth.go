// Package auth resolves the caller from request headers and guards routes by
// role, permission and tenant.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
	"github.com/be1500616/zergoqrf/pkg/platform/httputil"
	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

// SessionTokenHeader carries an anonymous guest session token.
const SessionTokenHeader = "X-Session-Token"

// Authenticator turns credentials into a caller. Both methods return
// (nil, nil) for credentials that do not verify.
type Authenticator interface {
	ValidateToken(ctx context.Context, rawToken string) (*models.UserContext, error)
	AuthenticateAnonymousSession(ctx context.Context, rawToken string) (*models.UserContext, error)
}

// RequireAuth accepts a bearer access token or, failing that, a guest
// session token, and stores the resolved UserContext in the request context.
func RequireAuth(authn Authenticator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			uc, presented, err := authenticate(r, authn)
			switch {
			case !presented:
				logger.WarnContext(ctx, "unauthorized access - missing credentials",
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Missing or invalid Authorization header"))
				return
			case err != nil:
				logger.ErrorContext(ctx, "failed to authenticate request",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, err)
				return
			case uc == nil:
				logger.WarnContext(ctx, "unauthorized access - invalid credentials",
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidToken, "Invalid or expired token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithUserContext(ctx, uc)))
		})
	}
}

// OptionalAuth resolves the caller like RequireAuth but never rejects. Missing
// or unverifiable credentials leave the request without a UserContext.
func OptionalAuth(authn Authenticator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			uc, presented, err := authenticate(r, authn)
			if err != nil {
				logger.WarnContext(ctx, "optional authentication failed",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
			}
			if !presented || err != nil || uc == nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(requestcontext.WithUserContext(ctx, uc)))
		})
	}
}

// authenticate reports presented=false when the request carries neither a
// bearer token nor a guest session token.
func authenticate(r *http.Request, authn Authenticator) (uc *models.UserContext, presented bool, err error) {
	ctx := r.Context()
	if token, ok := bearerToken(r); ok {
		uc, err = authn.ValidateToken(ctx, token)
		return uc, true, err
	}
	if session := strings.TrimSpace(r.Header.Get(SessionTokenHeader)); session != "" {
		uc, err = authn.AuthenticateAnonymousSession(ctx, session)
		return uc, true, err
	}
	return nil, false, nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RequireRole admits callers holding exactly role.
func RequireRole(role string, logger *slog.Logger) func(http.Handler) http.Handler {
	return guard(logger, "role", func(uc *models.UserContext) bool {
		return uc.HasRole(role)
	})
}

func RequireAnyRole(logger *slog.Logger, roles ...string) func(http.Handler) http.Handler {
	return guard(logger, "role", func(uc *models.UserContext) bool {
		return uc.HasAnyRole(roles...)
	})
}

// RequirePermission admits callers holding permission. Owners hold every permission.
func RequirePermission(permission string, logger *slog.Logger) func(http.Handler) http.Handler {
	return guard(logger, "permission", func(uc *models.UserContext) bool {
		return uc.HasPermission(permission)
	})
}

// RequireRestaurantAccess compares the restaurant in the named path
// parameter with the caller's tenant.
func RequireRestaurantAccess(param string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			uc := requestcontext.UserContext(ctx)
			if uc == nil {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, ""))
				return
			}
			restaurantID := chi.URLParam(r, param)
			if !uc.CanAccessRestaurant(&restaurantID) {
				logger.WarnContext(ctx, "tenant access denied",
					"event", "multi_tenant_violation",
					"log_type", "security",
					"user_id", uc.UserID,
					"restaurant_id", restaurantID,
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeMultiTenantViolation, "Access denied to this restaurant"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func guard(logger *slog.Logger, kind string, allowed func(*models.UserContext) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			uc := requestcontext.UserContext(ctx)
			if uc == nil {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, ""))
				return
			}
			if !allowed(uc) {
				logger.WarnContext(ctx, "forbidden - "+kind+" check failed",
					"user_id", uc.UserID,
					"role", uc.Role,
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeInsufficientPermissions, ""))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
