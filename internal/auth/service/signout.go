package service

import (
	"context"

	"github.com/be1500616/zergoqrf/internal/audit"
	"github.com/be1500616/zergoqrf/internal/auth/models"
)

const signedOutMessage = "Signed out successfully"

// SignOut ends the caller's provider session and revokes the bearer token it
// presented. Sign-out always reports success; downstream failures are logged.
func (s *Service) SignOut(ctx context.Context, uc *models.UserContext) *models.SignOutResponse {
	done := &models.SignOutResponse{Message: signedOutMessage, Success: true}
	if uc == nil || uc.IsAnonymous {
		return done
	}

	if _, err := s.auth.SignOut(ctx, uc.UserID); err != nil {
		s.logger.WarnContext(ctx, "provider sign-out failed",
			"user_id", uc.UserID,
			"error", err,
		)
	}
	if uc.Token != "" {
		if token, err := models.NewToken(uc.Token); err == nil {
			if _, err := s.tokens.BlacklistToken(ctx, token); err != nil {
				s.logger.WarnContext(ctx, "failed to revoke token on sign-out",
					"user_id", uc.UserID,
					"error", err,
				)
			}
		}
	}

	s.logAudit(ctx, audit.EventSignedOut, "user_id", uc.UserID)
	return done
}
