package domainerrors

import "errors"

// Code is the stable, machine-readable identifier of an authentication failure.
// Codes describe what went wrong in business terms; the transport layer owns
// the mapping to HTTP statuses.
type Code string

const (
	// CodeAuth is the catch-all for failures that fit no narrower category.
	CodeAuth                    Code = "AUTH_ERROR"
	CodeInvalidCredentials      Code = "INVALID_CREDENTIALS"
	CodeInvalidEmailFormat      Code = "INVALID_EMAIL_FORMAT"
	CodeInvalidPhoneFormat      Code = "INVALID_PHONE_FORMAT"
	CodeWeakPassword            Code = "WEAK_PASSWORD"
	CodeUserAlreadyExists       Code = "USER_ALREADY_EXISTS"
	CodeUserNotFound            Code = "USER_NOT_FOUND"
	CodeInvalidToken            Code = "INVALID_TOKEN"
	CodeTokenExpired            Code = "TOKEN_EXPIRED"
	CodeInvalidOTP              Code = "INVALID_OTP"
	CodeOTPExpired              Code = "OTP_EXPIRED"
	CodeSessionNotFound         Code = "SESSION_NOT_FOUND"
	CodeSessionExpired          Code = "SESSION_EXPIRED"
	CodeRateLimitExceeded       Code = "RATE_LIMIT_EXCEEDED"
	CodeInsufficientPermissions Code = "INSUFFICIENT_PERMISSIONS"
	CodeMultiTenantViolation    Code = "MULTI_TENANT_VIOLATION"
	CodeAccountDeactivated      Code = "ACCOUNT_DEACTIVATED"

	// Transport and infrastructure codes.
	CodeValidation            Code = "VALIDATION_ERROR"
	CodeBadRequest            Code = "BAD_REQUEST"
	CodeUnauthorized          Code = "UNAUTHORIZED"
	CodeInvalidRestaurantCode Code = "INVALID_RESTAURANT_CODE"
	CodeRestaurantNotFound    Code = "RESTAURANT_NOT_FOUND"
	CodeDatabase              Code = "DATABASE_ERROR"
	CodeInternal              Code = "INTERNAL_ERROR"
)

// defaultMessages are used when an error is raised without a message.
var defaultMessages = map[Code]string{
	CodeAuth:                    "Authentication failed",
	CodeInvalidCredentials:      "Invalid credentials provided",
	CodeInvalidEmailFormat:      "Invalid email format",
	CodeInvalidPhoneFormat:      "Invalid phone number format",
	CodeWeakPassword:            "Password does not meet security requirements",
	CodeUserAlreadyExists:       "User already exists",
	CodeUserNotFound:            "User not found",
	CodeInvalidToken:            "Invalid token",
	CodeTokenExpired:            "Token has expired",
	CodeInvalidOTP:              "Invalid OTP code",
	CodeOTPExpired:              "OTP code has expired",
	CodeSessionNotFound:         "Session not found",
	CodeSessionExpired:          "Session has expired",
	CodeRateLimitExceeded:       "Rate limit exceeded",
	CodeInsufficientPermissions: "Insufficient permissions",
	CodeMultiTenantViolation:    "Access denied: multi-tenant violation",
	CodeAccountDeactivated:      "Account is deactivated",
	CodeValidation:              "Request validation failed",
	CodeBadRequest:              "Bad request",
	CodeUnauthorized:            "Authentication required",
	CodeInvalidRestaurantCode:   "Invalid restaurant code",
	CodeRestaurantNotFound:      "Restaurant not found",
	CodeDatabase:                "Database operation failed",
	CodeInternal:                "Internal server error",
}

// DefaultMessage returns the canonical human-readable message for a code.
func DefaultMessage(code Code) string {
	if msg, ok := defaultMessages[code]; ok {
		return msg
	}
	return string(code)
}

// Error wraps domain or infrastructure failures with a stable code.
// Message is safe to show to callers; Err carries the internal cause and
// must never be rendered to clients.
type Error struct {
	Code    Code
	Message string
	Field   string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return DefaultMessage(e.Code)
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new domain error with the given code and message.
// An empty message falls back to the code's default message.
func New(code Code, msg string) error {
	if msg == "" {
		msg = DefaultMessage(code)
	}
	return &Error{Code: code, Message: msg}
}

// NewField creates a domain error bound to a request field.
func NewField(code Code, field, msg string) error {
	if msg == "" {
		msg = DefaultMessage(code)
	}
	return &Error{Code: code, Message: msg, Field: field}
}

// Wrap creates a new domain error wrapping an existing error.
// If the wrapped error is already a domain error, the original code is preserved.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: msg, Field: existing.Field, Err: err}
	}
	if msg == "" {
		msg = DefaultMessage(code)
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks if an error is a domain error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf returns the code of the outermost domain error, or CodeInternal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
