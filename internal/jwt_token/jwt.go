package jwttoken

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// DefaultAudience is the audience the identity provider stamps on user tokens.
const DefaultAudience = "authenticated"

// AccessTokenClaims mirrors the provider's access token payload.
type AccessTokenClaims struct {
	Email        string         `json:"email,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	Role         string         `json:"role,omitempty"`
	SessionID    string         `json:"session_id,omitempty"`
	IsAnonymous  bool           `json:"is_anonymous,omitempty"`
	AppMetadata  map[string]any `json:"app_metadata,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
	jwt.RegisteredClaims
}

// ToClaims converts the payload into the authorization claim set.
func (c *AccessTokenClaims) ToClaims() *models.Claims {
	return &models.Claims{
		Subject:      c.Subject,
		Email:        c.Email,
		Phone:        c.Phone,
		IsAnonymous:  c.IsAnonymous,
		AppMetadata:  c.AppMetadata,
		UserMetadata: c.UserMetadata,
	}
}

// JWTService verifies provider-issued HS256 tokens and can mint tokens with the
// same secret for local development and operator tooling.
type JWTService struct {
	signingKey []byte
	issuer     string
	audience   string
	tokenTTL   time.Duration
}

// NewJWTService builds a verifier. An empty issuer or audience disables that check.
func NewJWTService(signingKey, issuer, audience string, tokenTTL time.Duration) *JWTService {
	return &JWTService{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		audience:   audience,
		tokenTTL:   tokenTTL,
	}
}

// MintRequest describes a token to sign.
type MintRequest struct {
	UserID       string
	Email        string
	Phone        string
	Role         string
	RestaurantID string
	Permissions  []string
	IsAnonymous  bool
}

// GenerateAccessToken signs a token shaped like the provider's. Role,
// restaurant and permissions go into app metadata.
func (s *JWTService) GenerateAccessToken(ctx context.Context, req MintRequest) (string, error) {
	if req.UserID == "" {
		return "", errors.New("user id is required")
	}
	now := requestcontext.Now(ctx)

	appMetadata := map[string]any{}
	if req.Role != "" {
		appMetadata["role"] = req.Role
	}
	if req.RestaurantID != "" {
		appMetadata["restaurant_id"] = req.RestaurantID
	}
	if len(req.Permissions) > 0 {
		appMetadata["permissions"] = req.Permissions
	}

	claims := AccessTokenClaims{
		Email:       req.Email,
		Phone:       req.Phone,
		Role:        "authenticated",
		SessionID:   uuid.NewString(),
		IsAnonymous: req.IsAnonymous,
		AppMetadata: appMetadata,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   req.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	if s.issuer != "" {
		claims.Issuer = s.issuer
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
}

// ValidateToken verifies signature, algorithm, expiry, issuer and audience.
func (s *JWTService) ValidateToken(ctx context.Context, tokenString string) (*AccessTokenClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return requestcontext.Now(ctx) }),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	claims := new(AccessTokenClaims)
	parsed, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// ParseTokenSkipClaimsValidation checks only the signature. It is used to read
// the expiry of a token being revoked, which may already be expired.
func (s *JWTService) ParseTokenSkipClaimsValidation(tokenString string) (*AccessTokenClaims, error) {
	claims := new(AccessTokenClaims)
	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func (s *JWTService) keyFunc(*jwt.Token) (any, error) {
	return s.signingKey, nil
}
