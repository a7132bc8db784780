package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	s "github.com/be1500616/zergoqrf/pkg/string"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
	otpPattern   = regexp.MustCompile(`^\d{6}$`)
)

// FormatError reports a value that does not have the required shape.
// It never carries the rejected input, only a description of what was expected.
type FormatError struct {
	Kind  string
	Shape string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s format: expected %s", e.Kind, e.Shape)
}

// Email is a syntactically valid, normalized email address.
type Email struct {
	value string
}

// NewEmail validates raw against the address pattern and normalizes it to lower case.
func NewEmail(raw string) (Email, error) {
	if !emailPattern.MatchString(raw) {
		return Email{}, &FormatError{Kind: "email", Shape: "local@domain with a top-level domain of at least 2 letters"}
	}
	return Email{value: strings.ToLower(strings.TrimSpace(raw))}, nil
}

func (e Email) Value() string  { return e.value }
func (e Email) String() string { return e.value }
func (e Email) IsZero() bool   { return e.value == "" }

// Domain returns the part after '@'.
func (e Email) Domain() string {
	_, domain, _ := strings.Cut(e.value, "@")
	return domain
}

// LocalPart returns the part before '@'.
func (e Email) LocalPart() string {
	local, _, _ := strings.Cut(e.value, "@")
	return local
}

// Masked renders the address for logs as "ab***@domain".
func (e Email) Masked() string {
	local := e.LocalPart()
	if len(local) > 2 {
		local = local[:2]
	}
	return local + "***@" + e.Domain()
}

// Phone is an E.164 phone number.
type Phone struct {
	value string
}

func NewPhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	if !phonePattern.MatchString(trimmed) {
		return Phone{}, &FormatError{Kind: "phone", Shape: "'+' followed by 2 to 15 digits, first digit 1-9"}
	}
	return Phone{value: trimmed}, nil
}

func (p Phone) Value() string  { return p.value }
func (p Phone) String() string { return p.value }
func (p Phone) IsZero() bool   { return p.value == "" }

// CountryCode is a best-effort prefix extraction for the markets we serve.
func (p Phone) CountryCode() string {
	for _, prefix := range []string{"+1", "+44", "+91"} {
		if strings.HasPrefix(p.value, prefix) {
			return prefix
		}
	}
	if len(p.value) < 3 {
		return p.value
	}
	return p.value[:3]
}

// OTPCode is a six digit one-time passcode.
type OTPCode struct {
	value string
}

func NewOTPCode(raw string) (OTPCode, error) {
	trimmed := strings.TrimSpace(raw)
	if !otpPattern.MatchString(trimmed) {
		return OTPCode{}, &FormatError{Kind: "otp", Shape: "exactly 6 digits"}
	}
	return OTPCode{value: trimmed}, nil
}

func (o OTPCode) Value() string { return o.value }

// String is always a fixed mask.
func (o OTPCode) String() string { return "******" }

const (
	TokenTypeBearer  = "bearer"
	TokenTypeRefresh = "refresh"
)

// Token is an opaque access or refresh token issued by the identity provider.
type Token struct {
	value     string
	tokenType string
	expiresAt *time.Time
}

// NewToken wraps a bearer token.
func NewToken(raw string) (Token, error) {
	return NewTypedToken(raw, TokenTypeBearer, nil)
}

// NewTypedToken wraps a token of the given type with an optional expiry.
func NewTypedToken(raw, tokenType string, expiresAt *time.Time) (Token, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Token{}, &FormatError{Kind: "token", Shape: "a non-empty string"}
	}
	tokenType = strings.ToLower(strings.TrimSpace(tokenType))
	if tokenType == "" {
		tokenType = TokenTypeBearer
	}
	var exp *time.Time
	if expiresAt != nil {
		t := *expiresAt
		exp = &t
	}
	return Token{value: trimmed, tokenType: tokenType, expiresAt: exp}, nil
}

func (t Token) Value() string { return t.value }
func (t Token) Type() string  { return t.tokenType }
func (t Token) IsZero() bool  { return t.value == "" }

// ExpiresAt returns a copy of the expiry, if the provider supplied one.
func (t Token) ExpiresAt() *time.Time {
	if t.expiresAt == nil {
		return nil
	}
	exp := *t.expiresAt
	return &exp
}

// Equal compares tokens by value and type.
func (t Token) Equal(other Token) bool {
	return t.value == other.value && t.tokenType == other.tokenType
}

// String renders the masked form.
func (t Token) String() string { return s.Mask(t.value, 4, 10) }

// SessionToken is the opaque secret handed to anonymous guests.
type SessionToken struct {
	value string
}

func NewSessionToken(raw string) (SessionToken, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return SessionToken{}, &FormatError{Kind: "session token", Shape: "a non-empty string"}
	}
	return SessionToken{value: trimmed}, nil
}

func (t SessionToken) Value() string  { return t.value }
func (t SessionToken) String() string { return s.Mask(t.value, 4, 8) }
