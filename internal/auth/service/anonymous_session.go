package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/be1500616/zergoqrf/internal/audit"
	"github.com/be1500616/zergoqrf/internal/auth/models"
	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

// CreateAnonymousSession opens a guest session scoped to one restaurant and,
// optionally, one table.
func (s *Service) CreateAnonymousSession(ctx context.Context, req *models.AnonymousSessionRequest) (*models.AnonymousSessionResponse, error) {
	if _, err := uuid.Parse(req.RestaurantID); err != nil {
		s.authFailure(ctx, audit.EventAuthFailed, dErrors.CodeMultiTenantViolation, false, "restaurant_id", req.RestaurantID)
		return nil, dErrors.NewField(dErrors.CodeMultiTenantViolation, "restaurant_id", "Invalid restaurant ID format")
	}
	if req.TableID != nil {
		if _, err := uuid.Parse(*req.TableID); err != nil {
			s.authFailure(ctx, audit.EventAuthFailed, dErrors.CodeMultiTenantViolation, false, "restaurant_id", req.RestaurantID)
			return nil, dErrors.NewField(dErrors.CodeMultiTenantViolation, "table_id", "Invalid table ID format")
		}
	}
	if s.restaurants != nil {
		exists, err := s.restaurants.Exists(ctx, req.RestaurantID)
		if err != nil {
			return nil, s.unexpected(ctx, audit.EventAuthFailed, err, "Failed to create anonymous session", "restaurant_id", req.RestaurantID)
		}
		if !exists {
			s.authFailure(ctx, audit.EventAuthFailed, dErrors.CodeRestaurantNotFound, false, "restaurant_id", req.RestaurantID)
			return nil, dErrors.NewField(dErrors.CodeRestaurantNotFound, "restaurant_id", "")
		}
	}

	session, err := s.openGuestSession(ctx, req.RestaurantID, req.TableID)
	if err != nil {
		return nil, err
	}
	return models.ToAnonymousSessionResponse(session), nil
}

func (s *Service) openGuestSession(ctx context.Context, restaurantID string, tableID *string) (*models.AnonymousSession, error) {
	session, err := s.sessions.CreateAnonymousSession(ctx, restaurantID, tableID, s.anonymousTTL)
	if err != nil {
		return nil, s.unexpected(ctx, audit.EventAuthFailed, err, "Failed to create anonymous session", "restaurant_id", restaurantID)
	}
	s.logAudit(ctx, audit.EventAnonymousSessionCreated,
		"session_id", session.SessionID,
		"restaurant_id", session.RestaurantID,
	)
	if s.metrics != nil {
		s.metrics.IncrementAnonymousSessionsCreated()
	}
	return session, nil
}

// ValidateAnonymousSession reports whether the token belongs to an active,
// unexpired session. A malformed token is an error, an unknown one is not.
func (s *Service) ValidateAnonymousSession(ctx context.Context, rawToken string) (bool, error) {
	token, err := models.NewSessionToken(rawToken)
	if err != nil {
		return false, dErrors.NewField(dErrors.CodeInvalidToken, "session_token", "Invalid session token")
	}
	valid, err := s.sessions.ValidateAnonymousSession(ctx, token)
	if err != nil {
		return false, s.unexpected(ctx, audit.EventAuthFailed, err, "Session validation failed")
	}
	return valid, nil
}

// GetAnonymousSession returns nil for unknown, expired and invalidated sessions.
func (s *Service) GetAnonymousSession(ctx context.Context, sessionID string) (*models.AnonymousSessionResponse, error) {
	session, err := s.sessions.GetAnonymousSession(ctx, sessionID)
	if err != nil {
		return nil, s.unexpected(ctx, audit.EventAuthFailed, err, "Failed to load session", "session_id", sessionID)
	}
	if session == nil || !session.IsValid(requestcontext.Now(ctx)) {
		return nil, nil
	}
	return models.ToAnonymousSessionResponse(session), nil
}

// AuthenticateAnonymousSession resolves a guest session token to a user
// context. Nil means the token does not identify a usable session.
func (s *Service) AuthenticateAnonymousSession(ctx context.Context, rawToken string) (*models.UserContext, error) {
	token, err := models.NewSessionToken(rawToken)
	if err != nil {
		return nil, nil
	}
	session, err := s.sessions.GetAnonymousSessionByToken(ctx, token)
	if err != nil {
		return nil, s.unexpected(ctx, audit.EventAuthFailed, err, "Session validation failed")
	}
	if session == nil || !session.IsValid(requestcontext.Now(ctx)) {
		return nil, nil
	}
	return models.NewAnonymousUserContext(session), nil
}

// InvalidateAnonymousSession ends a guest session. False means nothing was
// invalidated.
func (s *Service) InvalidateAnonymousSession(ctx context.Context, sessionID string) (bool, error) {
	ok, err := s.sessions.InvalidateAnonymousSession(ctx, sessionID)
	if err != nil {
		return false, s.unexpected(ctx, audit.EventAuthFailed, err, "Failed to invalidate session", "session_id", sessionID)
	}
	if ok {
		s.logAudit(ctx, audit.EventAnonymousSessionEnded, "session_id", sessionID)
	}
	return ok, nil
}

// ExtendAnonymousSession pushes a live session's expiry forward. A zero
// duration extends by 24 hours.
func (s *Service) ExtendAnonymousSession(ctx context.Context, sessionID string, extendBy time.Duration) (*models.AnonymousSessionResponse, error) {
	if extendBy <= 0 {
		extendBy = defaultExtendBy
	}
	session, err := s.sessions.GetAnonymousSession(ctx, sessionID)
	if err != nil {
		return nil, s.unexpected(ctx, audit.EventAuthFailed, err, "Failed to extend session", "session_id", sessionID)
	}
	if session == nil || !session.IsActive {
		s.authFailure(ctx, audit.EventAuthFailed, dErrors.CodeSessionNotFound, false, "session_id", sessionID)
		return nil, dErrors.New(dErrors.CodeSessionNotFound, "")
	}

	extended, err := session.Extend(extendBy, requestcontext.Now(ctx))
	if err != nil {
		s.authFailure(ctx, audit.EventAuthFailed, dErrors.CodeSessionExpired, false, "session_id", sessionID)
		return nil, dErrors.New(dErrors.CodeSessionExpired, "Cannot extend expired session")
	}
	ok, err := s.sessions.ExtendAnonymousSession(ctx, sessionID, extended.ExpiresAt)
	if err != nil {
		return nil, s.unexpected(ctx, audit.EventAuthFailed, err, "Failed to extend session", "session_id", sessionID)
	}
	if !ok {
		return nil, dErrors.New(dErrors.CodeSessionNotFound, "")
	}

	s.logAudit(ctx, audit.EventAnonymousSessionExtend,
		"session_id", sessionID,
		"restaurant_id", extended.RestaurantID,
		"expires_at", extended.ExpiresAt,
	)
	return models.ToAnonymousSessionResponse(extended), nil
}

// CleanupExpiredSessions deletes expired guest sessions and returns how many
// were removed.
func (s *Service) CleanupExpiredSessions(ctx context.Context) (int, error) {
	deleted, err := s.sessions.CleanupExpiredSessions(ctx)
	if err != nil {
		return 0, s.unexpected(ctx, audit.EventSessionsCleaned, err, "Session cleanup failed")
	}
	if deleted > 0 {
		s.logAudit(ctx, audit.EventSessionsCleaned, "deleted", deleted)
		if s.metrics != nil {
			s.metrics.AddAnonymousSessionsCleaned(deleted)
		}
	}
	return deleted, nil
}
