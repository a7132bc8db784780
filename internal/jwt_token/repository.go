package jwttoken

import (
	"context"
	"log/slog"
	"time"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	"github.com/be1500616/zergoqrf/internal/auth/store/revocation"
	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

// fallbackRevocationTTL applies when a revoked token carries no readable expiry.
const fallbackRevocationTTL = 24 * time.Hour

// Repository answers token questions for the auth service: signature checks
// through the JWT service, revocations through a revocation list.
type Repository struct {
	jwt         *JWTService
	revocations revocation.List
	logger      *slog.Logger
}

func NewRepository(jwt *JWTService, revocations revocation.List, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{jwt: jwt, revocations: revocations, logger: logger}
}

// ValidateToken returns nil claims for tokens that fail verification.
func (r *Repository) ValidateToken(ctx context.Context, token models.Token) (*models.Claims, error) {
	claims, err := r.jwt.ValidateToken(ctx, token.Value())
	if err != nil {
		r.logger.DebugContext(ctx, "token verification failed", "reason", err.Error(), "token", token.String())
		return nil, nil
	}
	return claims.ToClaims(), nil
}

// ExtractUserContext is ValidateToken followed by claim merging.
func (r *Repository) ExtractUserContext(ctx context.Context, token models.Token) (*models.UserContext, error) {
	claims, err := r.ValidateToken(ctx, token)
	if err != nil || claims == nil {
		return nil, err
	}
	uc := models.NewUserContext(claims)
	uc.Token = token.Value()
	return uc, nil
}

func (r *Repository) IsTokenBlacklisted(ctx context.Context, token models.Token) (bool, error) {
	return r.revocations.IsRevoked(ctx, revocation.Key(token.Value()))
}

// BlacklistToken revokes a token until its own expiry. Tokens whose expiry
// cannot be read are held for a day.
func (r *Repository) BlacklistToken(ctx context.Context, token models.Token) (bool, error) {
	expiresAt := requestcontext.Now(ctx).Add(fallbackRevocationTTL)
	if claims, err := r.jwt.ParseTokenSkipClaimsValidation(token.Value()); err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := r.revocations.Revoke(ctx, revocation.Key(token.Value()), expiresAt); err != nil {
		return false, err
	}
	return true, nil
}
