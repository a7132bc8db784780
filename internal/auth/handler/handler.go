package handler

//go:generate mockgen -source=handler.go -destination=mocks/handler-mocks.go -package=mocks

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	"github.com/be1500616/zergoqrf/internal/ratelimit"
	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
	"github.com/be1500616/zergoqrf/pkg/platform/httputil"
	"github.com/be1500616/zergoqrf/pkg/platform/middleware/admin"
	authmw "github.com/be1500616/zergoqrf/pkg/platform/middleware/auth"
	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

// Service defines the authentication use cases exposed over HTTP.
type Service interface {
	authmw.Authenticator

	SignInWithEmail(ctx context.Context, req *models.EmailSignInRequest) (*models.AuthResponse, error)
	SignUpWithEmail(ctx context.Context, req *models.EmailSignUpRequest) (*models.AuthResponse, error)
	InitiatePhoneAuth(ctx context.Context, req *models.PhoneAuthRequest) (*models.PhoneAuthResponse, error)
	ResendOTP(ctx context.Context, req *models.PhoneAuthRequest) (*models.PhoneAuthResponse, error)
	VerifyPhoneOTP(ctx context.Context, req *models.OTPVerificationRequest) (*models.AuthResponse, error)
	PhoneSignUp(ctx context.Context, req *models.PhoneSignUpRequest) (*models.AuthResponse, error)
	CreateAnonymousSession(ctx context.Context, req *models.AnonymousSessionRequest) (*models.AnonymousSessionResponse, error)
	ValidateAnonymousSession(ctx context.Context, rawToken string) (bool, error)
	GetAnonymousSession(ctx context.Context, sessionID string) (*models.AnonymousSessionResponse, error)
	InvalidateAnonymousSession(ctx context.Context, sessionID string) (bool, error)
	ExtendAnonymousSession(ctx context.Context, sessionID string, extendBy time.Duration) (*models.AnonymousSessionResponse, error)
	CleanupExpiredSessions(ctx context.Context) (int, error)
	RefreshToken(ctx context.Context, rawRefreshToken string) (*models.AuthResponse, error)
	BlacklistToken(ctx context.Context, rawToken string) (bool, error)
	GetUserProfile(ctx context.Context, uc *models.UserContext) (*models.UserProfileResponse, error)
	SignOut(ctx context.Context, uc *models.UserContext) *models.SignOutResponse
	AccessRestaurantByCode(ctx context.Context, req *models.RestaurantCodeRequest) (*models.RestaurantCodeResponse, error)
	ActivateUser(ctx context.Context, actor *models.UserContext, userID string) (*models.MessageResponse, error)
	DeactivateUser(ctx context.Context, actor *models.UserContext, userID string) (*models.MessageResponse, error)
}

// OTPLimiter bounds OTP sends per phone number.
type OTPLimiter interface {
	AllowOTP(ctx context.Context, phone string) (*ratelimit.Result, error)
}

// Handler serves the /auth, /admin and restaurant context endpoints.
type Handler struct {
	auth       Service
	otp        OTPLimiter
	adminToken string
	logger     *slog.Logger
}

// New creates a Handler. A nil limiter disables OTP rate limiting.
func New(auth Service, otp OTPLimiter, adminToken string, logger *slog.Logger) *Handler {
	return &Handler{
		auth:       auth,
		otp:        otp,
		adminToken: adminToken,
		logger:     logger,
	}
}

// Register registers public and authenticated auth routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/signin/email", h.HandleEmailSignIn)
	r.Post("/auth/signup/email", h.HandleEmailSignUp)
	r.Post("/auth/signin/phone", h.HandlePhoneSignIn)
	r.Post("/auth/verify/phone", h.HandleVerifyPhone)
	r.Post("/auth/signup/phone", h.HandlePhoneSignUp)
	r.Post("/auth/otp/resend", h.HandleResendOTP)

	r.Post("/auth/sessions/anonymous", h.HandleCreateAnonymousSession)
	r.Post("/auth/sessions/anonymous/validate", h.HandleValidateAnonymousSession)

	r.Post("/auth/refresh", h.HandleRefresh)
	r.Post("/auth/validate-restaurant-code", h.HandleRestaurantCode)

	// Sign-out succeeds whatever the state of the caller's credentials.
	r.With(authmw.OptionalAuth(h.auth, h.logger)).Post("/auth/signout", h.HandleSignOut)

	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireAuth(h.auth, h.logger))
		r.Get("/auth/me", h.HandleMe)

		r.Get("/auth/sessions/anonymous/{session_id}", h.HandleGetAnonymousSession)
		r.Post("/auth/sessions/anonymous/{session_id}/extend", h.HandleExtendAnonymousSession)
		r.Delete("/auth/sessions/anonymous/{session_id}", h.HandleInvalidateAnonymousSession)

		r.With(authmw.RequireRestaurantAccess("restaurant_id", h.logger)).
			Get("/restaurants/{restaurant_id}/context", h.HandleRestaurantContext)

		r.Group(func(r chi.Router) {
			r.Use(authmw.RequireRole(models.RoleOwner, h.logger))
			r.Post("/auth/token/revoke", h.HandleRevokeToken)
			r.Post("/admin/users/{user_id}/activate", h.HandleActivateUser)
			r.Post("/admin/users/{user_id}/deactivate", h.HandleDeactivateUser)
		})
	})
}

// RegisterAdmin registers operator routes guarded by the admin token.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.With(admin.RequireAdminToken(h.adminToken, h.logger)).
		Post("/admin/sessions/cleanup", h.HandleCleanupSessions)
}

func (h *Handler) HandleEmailSignIn(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[models.EmailSignInRequest](w, r, h.logger)
	if !ok {
		return
	}
	res, err := h.auth.SignInWithEmail(r.Context(), req)
	h.respond(w, r, http.StatusOK, res, err, "email sign-in failed")
}

func (h *Handler) HandleEmailSignUp(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[models.EmailSignUpRequest](w, r, h.logger)
	if !ok {
		return
	}
	res, err := h.auth.SignUpWithEmail(r.Context(), req)
	h.respond(w, r, http.StatusCreated, res, err, "email sign-up failed")
}

func (h *Handler) HandlePhoneSignIn(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[models.PhoneAuthRequest](w, r, h.logger)
	if !ok || !h.allowOTP(w, r, req.Phone) {
		return
	}
	res, err := h.auth.InitiatePhoneAuth(r.Context(), req)
	h.respond(w, r, http.StatusOK, res, err, "phone sign-in failed")
}

func (h *Handler) HandleResendOTP(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[models.PhoneAuthRequest](w, r, h.logger)
	if !ok || !h.allowOTP(w, r, req.Phone) {
		return
	}
	res, err := h.auth.ResendOTP(r.Context(), req)
	h.respond(w, r, http.StatusOK, res, err, "otp resend failed")
}

func (h *Handler) HandleVerifyPhone(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[models.OTPVerificationRequest](w, r, h.logger)
	if !ok {
		return
	}
	res, err := h.auth.VerifyPhoneOTP(r.Context(), req)
	h.respond(w, r, http.StatusOK, res, err, "otp verification failed")
}

// HandlePhoneSignUp dispatches a code before verifying, so it counts against
// the OTP window too.
func (h *Handler) HandlePhoneSignUp(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[models.PhoneSignUpRequest](w, r, h.logger)
	if !ok || !h.allowOTP(w, r, req.Phone) {
		return
	}
	res, err := h.auth.PhoneSignUp(r.Context(), req)
	h.respond(w, r, http.StatusCreated, res, err, "phone sign-up failed")
}

func (h *Handler) HandleCreateAnonymousSession(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[models.AnonymousSessionRequest](w, r, h.logger)
	if !ok {
		return
	}
	res, err := h.auth.CreateAnonymousSession(r.Context(), req)
	h.respond(w, r, http.StatusCreated, res, err, "anonymous session creation failed")
}

func (h *Handler) HandleValidateAnonymousSession(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[models.SessionTokenRequest](w, r, h.logger)
	if !ok {
		return
	}
	valid, err := h.auth.ValidateAnonymousSession(r.Context(), req.SessionToken)
	h.respond(w, r, http.StatusOK, &models.SessionValidationResponse{Valid: valid}, err, "anonymous session validation failed")
}

func (h *Handler) HandleGetAnonymousSession(w http.ResponseWriter, r *http.Request) {
	res, err := h.authorizeSession(r.Context(), chi.URLParam(r, "session_id"))
	if res != nil {
		res.SessionToken = ""
	}
	h.respond(w, r, http.StatusOK, res, err, "anonymous session lookup failed")
}

func (h *Handler) HandleExtendAnonymousSession(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeOptionalAndPrepare[models.ExtendSessionRequest](w, r, h.logger)
	if !ok {
		return
	}
	sessionID := chi.URLParam(r, "session_id")
	if _, err := h.authorizeSession(r.Context(), sessionID); err != nil {
		h.respond(w, r, http.StatusOK, nil, err, "anonymous session extension denied")
		return
	}
	extendBy := time.Duration(req.ExtendHours) * time.Hour
	res, err := h.auth.ExtendAnonymousSession(r.Context(), sessionID, extendBy)
	if res != nil {
		res.SessionToken = ""
	}
	h.respond(w, r, http.StatusOK, res, err, "anonymous session extension failed")
}

func (h *Handler) HandleInvalidateAnonymousSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")
	if _, err := h.authorizeSession(r.Context(), sessionID); err != nil {
		h.respond(w, r, http.StatusOK, nil, err, "anonymous session invalidation denied")
		return
	}
	ok, err := h.auth.InvalidateAnonymousSession(r.Context(), sessionID)
	if err == nil && !ok {
		err = dErrors.New(dErrors.CodeSessionNotFound, "")
	}
	h.respond(w, r, http.StatusOK, &models.MessageResponse{Message: "Session invalidated", Success: true}, err, "anonymous session invalidation failed")
}

// authorizeSession admits the guest holding the session and owners of the
// session's restaurant. Everyone else gets 403, whether or not the session
// exists.
func (h *Handler) authorizeSession(ctx context.Context, sessionID string) (*models.AnonymousSessionResponse, error) {
	uc := requestcontext.UserContext(ctx)
	switch {
	case uc == nil:
		return nil, dErrors.New(dErrors.CodeUnauthorized, "Authentication required")
	case uc.IsAnonymous && uc.UserID != sessionID:
		return nil, dErrors.New(dErrors.CodeInsufficientPermissions, "Session belongs to another guest")
	case !uc.IsAnonymous && !uc.HasRole(models.RoleOwner):
		return nil, dErrors.New(dErrors.CodeInsufficientPermissions, "Insufficient permissions")
	}

	session, err := h.auth.GetAnonymousSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		if uc.IsAnonymous {
			return nil, dErrors.New(dErrors.CodeSessionNotFound, "Session not found or expired")
		}
		return nil, dErrors.New(dErrors.CodeInsufficientPermissions, "Insufficient permissions")
	}
	if !uc.IsAnonymous && !uc.CanAccessRestaurant(&session.RestaurantID) {
		return nil, dErrors.New(dErrors.CodeInsufficientPermissions, "Insufficient permissions")
	}
	return session, nil
}

func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[models.RefreshTokenRequest](w, r, h.logger)
	if !ok {
		return
	}
	res, err := h.auth.RefreshToken(r.Context(), req.RefreshToken)
	h.respond(w, r, http.StatusOK, res, err, "token refresh failed")
}

func (h *Handler) HandleRestaurantCode(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[models.RestaurantCodeRequest](w, r, h.logger)
	if !ok {
		return
	}
	res, err := h.auth.AccessRestaurantByCode(r.Context(), req)
	h.respond(w, r, http.StatusOK, res, err, "restaurant code access failed")
}

func (h *Handler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	httputil.WriteJSON(w, http.StatusOK, h.auth.SignOut(ctx, requestcontext.UserContext(ctx)))
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res, err := h.auth.GetUserProfile(ctx, requestcontext.UserContext(ctx))
	h.respond(w, r, http.StatusOK, res, err, "profile lookup failed")
}

func (h *Handler) HandleRestaurantContext(w http.ResponseWriter, r *http.Request) {
	uc := requestcontext.UserContext(r.Context())
	httputil.WriteJSON(w, http.StatusOK, &models.RestaurantContextResponse{
		RestaurantID: chi.URLParam(r, "restaurant_id"),
		UserID:       uc.UserID,
		Role:         uc.Role,
		Permissions:  uc.Permissions,
		IsAnonymous:  uc.IsAnonymous,
	})
}

func (h *Handler) HandleRevokeToken(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[models.RevokeTokenRequest](w, r, h.logger)
	if !ok {
		return
	}
	revoked, err := h.auth.BlacklistToken(r.Context(), req.Token)
	h.respond(w, r, http.StatusOK, &models.MessageResponse{Message: "Token revoked", Success: revoked}, err, "token revocation failed")
}

func (h *Handler) HandleActivateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res, err := h.auth.ActivateUser(ctx, requestcontext.UserContext(ctx), chi.URLParam(r, "user_id"))
	h.respond(w, r, http.StatusOK, res, err, "user activation failed")
}

func (h *Handler) HandleDeactivateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res, err := h.auth.DeactivateUser(ctx, requestcontext.UserContext(ctx), chi.URLParam(r, "user_id"))
	h.respond(w, r, http.StatusOK, res, err, "user deactivation failed")
}

// HandleCleanupSessions purges expired guest sessions on operator request.
func (h *Handler) HandleCleanupSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	deleted, err := h.auth.CleanupExpiredSessions(ctx)
	if err == nil {
		h.logger.InfoContext(ctx, "anonymous sessions cleaned by operator",
			"deleted", deleted,
			"actor_id", admin.ActorID(ctx),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	h.respond(w, r, http.StatusOK, &models.CleanupResponse{Deleted: deleted}, err, "session cleanup failed")
}

// allowOTP writes a 429 and returns false once the phone's window is spent.
func (h *Handler) allowOTP(w http.ResponseWriter, r *http.Request, phone string) bool {
	if h.otp == nil {
		return true
	}
	ctx := r.Context()
	result, err := h.otp.AllowOTP(ctx, phone)
	if err != nil {
		h.logger.ErrorContext(ctx, "otp rate limit check failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, err)
		return false
	}

	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	if result.Allowed {
		return true
	}
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimitExceeded, "Too many OTP requests. Please try again later"))
	return false
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, body any, err error, msg string) {
	if err != nil {
		ctx := r.Context()
		h.logger.WarnContext(ctx, msg,
			"error", err,
			"error_code", dErrors.CodeOf(err),
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, status, body)
}
