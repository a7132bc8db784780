package service

import (
	"context"
	"unicode/utf8"

	"github.com/be1500616/zergoqrf/internal/audit"
	"github.com/be1500616/zergoqrf/internal/auth/models"
	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
)

const weakPasswordMessage = "Password must be at least 8 characters long"

// SignInWithEmail authenticates with email and password. Format and password
// length are checked locally before the provider is contacted.
func (s *Service) SignInWithEmail(ctx context.Context, req *models.EmailSignInRequest) (*models.AuthResponse, error) {
	email, err := models.NewEmail(req.Email)
	if err != nil {
		s.authFailure(ctx, audit.EventSignInFailed, dErrors.CodeInvalidEmailFormat, false)
		return nil, dErrors.NewField(dErrors.CodeInvalidEmailFormat, "email", "")
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		s.authFailure(ctx, audit.EventSignInFailed, dErrors.CodeWeakPassword, false, "subject", email.Masked())
		return nil, dErrors.NewField(dErrors.CodeWeakPassword, "password", weakPasswordMessage)
	}

	result, err := s.auth.SignInWithEmail(ctx, email, req.Password)
	if err != nil {
		return nil, s.unexpected(ctx, audit.EventSignInFailed, err, "Authentication failed", "subject", email.Masked())
	}
	if !result.Success || result.User == nil || result.Session == nil {
		failure := signInFailure.classify(result.ErrorMessage)
		s.authFailure(ctx, audit.EventSignInFailed, dErrors.CodeOf(failure), false, "subject", email.Masked())
		return nil, failure
	}
	if !result.User.IsActive {
		s.authFailure(ctx, audit.EventSignInFailed, dErrors.CodeAccountDeactivated, false, "user_id", result.User.ID)
		return nil, dErrors.New(dErrors.CodeAccountDeactivated, "")
	}

	s.logAudit(ctx, audit.EventSignedIn,
		"user_id", result.User.ID,
		"subject", email.Masked(),
		"method", "email",
	)
	if s.metrics != nil {
		s.metrics.IncrementSignIn("email")
	}
	return toAuthResponse(result.User, result.Session), nil
}

// SignUpWithEmail creates an account. When the provider defers login (email
// confirmation pending) the response carries empty tokens and an inactive user
// rather than an error.
func (s *Service) SignUpWithEmail(ctx context.Context, req *models.EmailSignUpRequest) (*models.AuthResponse, error) {
	email, err := models.NewEmail(req.Email)
	if err != nil {
		s.authFailure(ctx, audit.EventSignUpFailed, dErrors.CodeInvalidEmailFormat, false)
		return nil, dErrors.NewField(dErrors.CodeInvalidEmailFormat, "email", "")
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		s.authFailure(ctx, audit.EventSignUpFailed, dErrors.CodeWeakPassword, false, "subject", email.Masked())
		return nil, dErrors.NewField(dErrors.CodeWeakPassword, "password", weakPasswordMessage)
	}
	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}

	existing, err := s.auth.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, s.unexpected(ctx, audit.EventSignUpFailed, err, "Account creation failed", "subject", email.Masked())
	}
	if existing != nil {
		s.authFailure(ctx, audit.EventSignUpFailed, dErrors.CodeUserAlreadyExists, false, "subject", email.Masked())
		return nil, dErrors.NewField(dErrors.CodeUserAlreadyExists, "email", "User with this email already exists")
	}

	result, err := s.auth.SignUpWithEmail(ctx, email, req.Password, req.Name, role, req.RestaurantID)
	if err != nil {
		return nil, s.unexpected(ctx, audit.EventSignUpFailed, err, "Account creation failed", "subject", email.Masked())
	}
	if !result.Success || result.User == nil {
		failure := signUpFailure.classify(result.ErrorMessage)
		s.authFailure(ctx, audit.EventSignUpFailed, dErrors.CodeOf(failure), false, "subject", email.Masked())
		return nil, failure
	}

	s.logAudit(ctx, audit.EventSignedUp,
		"user_id", result.User.ID,
		"subject", email.Masked(),
		"method", "email",
		"requires_verification", result.Session == nil,
	)
	if s.metrics != nil {
		s.metrics.IncrementSignUp("email")
	}

	if result.Session == nil {
		user := models.ToUserDTO(result.User)
		user.IsActive = false
		if user.Email == nil {
			user.Email = strPtr(email.Value())
		}
		if user.Name == nil {
			user.Name = req.Name
		}
		return &models.AuthResponse{
			TokenType: models.TokenTypeBearer,
			ExpiresIn: 0,
			User:      user,
		}, nil
	}
	return toAuthResponse(result.User, result.Session), nil
}

// toAuthResponse maps a provider session. The provider's lifetime is
// authoritative; the default applies only when it reports none.
func toAuthResponse(user *models.User, session *models.AuthSession) *models.AuthResponse {
	resp := &models.AuthResponse{
		AccessToken: session.AccessToken.Value(),
		TokenType:   models.TokenTypeBearer,
		ExpiresIn:   models.DefaultExpiresIn,
	}
	if session.RefreshToken != nil {
		resp.RefreshToken = session.RefreshToken.Value()
	}
	if session.ExpiresIn > 0 {
		resp.ExpiresIn = session.ExpiresIn
	}
	if user != nil {
		resp.User = models.ToUserDTO(user)
	} else {
		resp.User = models.UserDTO{ID: session.UserID, Role: models.RoleCustomer, Permissions: map[string]bool{}, IsActive: true}
	}
	return resp
}

func strPtr(s string) *string {
	return &s
}
