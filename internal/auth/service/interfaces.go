package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/be1500616/zergoqrf/internal/audit"
	"github.com/be1500616/zergoqrf/internal/auth/models"
	"github.com/be1500616/zergoqrf/internal/restaurant"
)

// AuthRepository delegates credential operations to the identity provider.
// Provider-reported failures come back as an unsuccessful AuthenticationResult;
// a non-nil error means the call itself failed. Lookups return (nil, nil)
// when the user does not exist.
type AuthRepository interface {
	SignInWithEmail(ctx context.Context, email models.Email, password string) (*models.AuthenticationResult, error)
	SignUpWithEmail(ctx context.Context, email models.Email, password string, name *string, role string, restaurantID *string) (*models.AuthenticationResult, error)
	InitiatePhoneAuth(ctx context.Context, phone models.Phone) (bool, error)
	VerifyPhoneOTP(ctx context.Context, phone models.Phone, otp models.OTPCode, name *string) (*models.AuthenticationResult, error)
	RefreshSession(ctx context.Context, refreshToken models.Token) (*models.AuthenticationResult, error)
	SignOut(ctx context.Context, userID string) (bool, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email models.Email) (*models.User, error)
	GetUserByPhone(ctx context.Context, phone models.Phone) (*models.User, error)
	UpdateUserMetadata(ctx context.Context, userID string, metadata map[string]any) (bool, error)
}

// SessionRepository persists anonymous guest sessions in the tenant data store.
// Lookups return (nil, nil) when the session does not exist.
type SessionRepository interface {
	CreateAnonymousSession(ctx context.Context, restaurantID string, tableID *string, ttl time.Duration) (*models.AnonymousSession, error)
	ValidateAnonymousSession(ctx context.Context, token models.SessionToken) (bool, error)
	GetAnonymousSession(ctx context.Context, sessionID string) (*models.AnonymousSession, error)
	GetAnonymousSessionByToken(ctx context.Context, token models.SessionToken) (*models.AnonymousSession, error)
	InvalidateAnonymousSession(ctx context.Context, sessionID string) (bool, error)
	ExtendAnonymousSession(ctx context.Context, sessionID string, expiresAt time.Time) (bool, error)
	CleanupExpiredSessions(ctx context.Context) (int, error)
}

// TokenRepository verifies provider tokens and owns the revocation list.
// ValidateToken returns (nil, nil) for tokens that fail verification.
type TokenRepository interface {
	ValidateToken(ctx context.Context, token models.Token) (*models.Claims, error)
	ExtractUserContext(ctx context.Context, token models.Token) (*models.UserContext, error)
	IsTokenBlacklisted(ctx context.Context, token models.Token) (bool, error)
	BlacklistToken(ctx context.Context, token models.Token) (bool, error)
}

// UserRepository manages user records through the provider's admin surface.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) (*models.User, error)
	DeleteUser(ctx context.Context, userID string) (bool, error)
	ActivateUser(ctx context.Context, userID string) (bool, error)
	DeactivateUser(ctx context.Context, userID string) (bool, error)
}

// RestaurantDirectory resolves tenants. FindByCode returns sentinel.ErrNotFound
// for unknown codes.
type RestaurantDirectory interface {
	Exists(ctx context.Context, restaurantID string) (bool, error)
	FindByCode(ctx context.Context, code string) (*restaurant.Restaurant, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, base audit.Event) error
}
