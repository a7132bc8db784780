package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite pins the behavior every layer relies on: codes survive
// wrapping and errors.Is compares by code.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeUserNotFound, Message: "no such user"}
		s.Equal("no such user", err.Error())
	})

	s.Run("falls back to the code's default message", func() {
		err := &Error{Code: CodeSessionExpired}
		s.Equal("Session has expired", err.Error())
	})

	s.Run("unknown codes render as the code itself", func() {
		err := &Error{Code: Code("SOMETHING_ELSE")}
		s.Equal("SOMETHING_ELSE", err.Error())
	})
}

func (s *DomainErrorsSuite) TestIsMatching() {
	s.Run("matches by code only", func() {
		err1 := New(CodeInvalidOTP, "wrong code")
		err2 := New(CodeInvalidOTP, "different text")
		s.True(errors.Is(err1, err2))
	})

	s.Run("does not match different codes", func() {
		s.False(errors.Is(New(CodeInvalidOTP, ""), New(CodeOTPExpired, "")))
	})

	s.Run("matches through fmt wrapping", func() {
		err := fmt.Errorf("verify: %w", New(CodeTokenExpired, ""))
		s.True(errors.Is(err, &Error{Code: CodeTokenExpired}))
	})
}

func (s *DomainErrorsSuite) TestNew() {
	s.Run("creates error with code and message", func() {
		err := New(CodeWeakPassword, "Password must be at least 8 characters long")

		var domainErr *Error
		s.Require().True(errors.As(err, &domainErr))
		s.Equal(CodeWeakPassword, domainErr.Code)
		s.Equal("Password must be at least 8 characters long", domainErr.Message)
	})

	s.Run("empty message uses default", func() {
		err := New(CodeMultiTenantViolation, "")
		s.Equal("Access denied: multi-tenant violation", err.Error())
	})

	s.Run("field errors carry the field name", func() {
		err := NewField(CodeValidation, "email", "email is required")

		var domainErr *Error
		s.Require().True(errors.As(err, &domainErr))
		s.Equal("email", domainErr.Field)
	})
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("preserves original domain code when wrapping domain error", func() {
		original := New(CodeUserNotFound, "user not found")
		wrapped := Wrap(original, CodeInternal, "profile lookup failed")

		s.Equal(CodeUserNotFound, CodeOf(wrapped))
		s.Equal("profile lookup failed", wrapped.Error())
	})

	s.Run("uses provided code when wrapping non-domain error", func() {
		original := errors.New("connection reset")
		wrapped := Wrap(original, CodeAuth, "Authentication failed")

		s.Equal(CodeAuth, CodeOf(wrapped))
		s.True(errors.Is(wrapped, original))
	})
}

func (s *DomainErrorsSuite) TestHasCode() {
	s.Run("returns true for matching code", func() {
		s.True(HasCode(New(CodeRateLimitExceeded, ""), CodeRateLimitExceeded))
	})

	s.Run("returns false for non-domain error", func() {
		s.False(HasCode(errors.New("plain"), CodeInternal))
	})

	s.Run("returns false for nil error", func() {
		s.False(HasCode(nil, CodeInternal))
	})

	s.Run("CodeOf defaults to internal", func() {
		s.Equal(CodeInternal, CodeOf(errors.New("plain")))
	})
}
