package service

import (
	"context"

	"github.com/be1500616/zergoqrf/internal/audit"
	"github.com/be1500616/zergoqrf/internal/auth/models"
	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
)

// RefreshToken exchanges a refresh token for a new session.
func (s *Service) RefreshToken(ctx context.Context, rawRefreshToken string) (*models.AuthResponse, error) {
	refresh, err := models.NewTypedToken(rawRefreshToken, models.TokenTypeRefresh, nil)
	if err != nil {
		s.authFailure(ctx, audit.EventTokenRefreshFailed, dErrors.CodeInvalidToken, false)
		return nil, dErrors.NewField(dErrors.CodeInvalidToken, "refresh_token", "Invalid refresh token")
	}

	result, err := s.auth.RefreshSession(ctx, refresh)
	if err != nil {
		return nil, s.unexpected(ctx, audit.EventTokenRefreshFailed, err, "Token refresh failed")
	}
	if !result.Success || result.Session == nil {
		failure := refreshFailure.classify(result.ErrorMessage)
		s.authFailure(ctx, audit.EventTokenRefreshFailed, dErrors.CodeOf(failure), false)
		return nil, failure
	}

	userID := result.Session.UserID
	if result.User != nil {
		userID = result.User.ID
	}
	s.logAudit(ctx, audit.EventTokenRefreshed, "user_id", userID)
	if s.metrics != nil {
		s.metrics.IncrementTokensRefreshed()
	}
	return toAuthResponse(result.User, result.Session), nil
}

// ValidateToken turns a bearer token into a user context. Revoked and
// unverifiable tokens yield nil without an error; only a malformed token or a
// failing dependency is an error. A revocation list that cannot be read fails
// closed.
func (s *Service) ValidateToken(ctx context.Context, rawToken string) (*models.UserContext, error) {
	token, err := models.NewToken(rawToken)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeInvalidToken, "")
	}

	revoked, err := s.tokens.IsTokenBlacklisted(ctx, token)
	if err != nil {
		return nil, s.unexpected(ctx, audit.EventAuthFailed, err, "Token validation failed")
	}
	if revoked {
		s.authFailure(ctx, audit.EventAuthFailed, dErrors.CodeInvalidToken, false, "reason_detail", "token_revoked")
		return nil, nil
	}

	claims, err := s.tokens.ValidateToken(ctx, token)
	if err != nil {
		return nil, s.unexpected(ctx, audit.EventAuthFailed, err, "Token validation failed")
	}
	if claims == nil {
		return nil, nil
	}

	uc := models.NewUserContext(claims)
	uc.Token = token.Value()
	return uc, nil
}

// BlacklistToken revokes a token until it expires. Revoking twice is not an error.
func (s *Service) BlacklistToken(ctx context.Context, rawToken string) (bool, error) {
	token, err := models.NewToken(rawToken)
	if err != nil {
		return false, dErrors.NewField(dErrors.CodeInvalidToken, "token", "")
	}
	ok, err := s.tokens.BlacklistToken(ctx, token)
	if err != nil {
		return false, s.unexpected(ctx, audit.EventTokenBlacklisted, err, "Failed to revoke token")
	}
	s.logAudit(ctx, audit.EventTokenBlacklisted, "token", token.String())
	if s.metrics != nil {
		s.metrics.IncrementTokensBlacklisted()
	}
	return ok, nil
}
