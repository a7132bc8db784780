package service

import (
	"context"
	"strings"

	"github.com/be1500616/zergoqrf/internal/audit"
	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
)

// providerFailure describes how a use case translates an unsuccessful
// provider result into a domain error.
type providerFailure struct {
	expired        dErrors.Code
	invalid        dErrors.Code
	invalidMessage string
	// duplicate is set for flows where the provider can report an existing account.
	duplicate bool
}

var (
	signInFailure  = providerFailure{dErrors.CodeTokenExpired, dErrors.CodeInvalidCredentials, "Invalid email or password", false}
	signUpFailure  = providerFailure{dErrors.CodeTokenExpired, dErrors.CodeInvalidCredentials, "Failed to create user account", true}
	otpFailure     = providerFailure{dErrors.CodeOTPExpired, dErrors.CodeInvalidOTP, "Invalid or expired OTP", false}
	refreshFailure = providerFailure{dErrors.CodeTokenExpired, dErrors.CodeInvalidToken, "Invalid refresh token", false}
)

// classify maps the provider's free-text failure message. The provider exposes
// no structured code, so the substring "expired" is the only expiry signal.
// The provider text itself is never returned to callers.
func (f providerFailure) classify(message string) error {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "expired"):
		return dErrors.New(f.expired, "")
	case f.duplicate && (strings.Contains(lower, "already registered") || strings.Contains(lower, "already exists")):
		return dErrors.New(dErrors.CodeUserAlreadyExists, "User with this email already exists")
	default:
		return dErrors.New(f.invalid, f.invalidMessage)
	}
}

// unexpected logs the full cause server side and returns a sanitized
// catch-all authentication error.
func (s *Service) unexpected(ctx context.Context, event audit.AuditEvent, err error, message string, attributes ...any) error {
	s.authFailure(ctx, event, dErrors.CodeAuth, true, append(attributes, "error", err)...)
	return dErrors.Wrap(err, dErrors.CodeAuth, message)
}
