package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
)

// ErrorDetail points at a single offending field.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error     string        `json:"error"`
	ErrorCode string        `json:"error_code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details"`
	Timestamp string        `json:"timestamp"`
}

func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent, so an encoding error cannot change the status.
	_ = json.NewEncoder(w).Encode(response)
}

// WriteError translates domain errors into the error envelope. Anything
// that is not a domain error is reported as an internal error without
// exposing its text.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeInternal
	message := dErrors.DefaultMessage(dErrors.CodeInternal)
	var field string

	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		code = domainErr.Code
		field = domainErr.Field
		if code != dErrors.CodeInternal && code != dErrors.CodeDatabase {
			message = domainErr.Error()
		} else {
			message = dErrors.DefaultMessage(code)
		}
	}

	body := ErrorResponse{
		Error:     string(code),
		ErrorCode: string(code),
		Message:   message,
		Details:   []ErrorDetail{},
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if field != "" {
		body.Details = append(body.Details, ErrorDetail{Code: string(code), Message: message, Field: field})
	}
	WriteJSON(w, StatusFor(code), body)
}

// StatusFor maps a domain code to its HTTP status.
func StatusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeAuth, dErrors.CodeInvalidCredentials, dErrors.CodeInvalidToken,
		dErrors.CodeTokenExpired, dErrors.CodeInvalidOTP, dErrors.CodeOTPExpired,
		dErrors.CodeSessionExpired, dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeInsufficientPermissions, dErrors.CodeMultiTenantViolation, dErrors.CodeAccountDeactivated:
		return http.StatusForbidden
	case dErrors.CodeUserNotFound, dErrors.CodeSessionNotFound, dErrors.CodeRestaurantNotFound:
		return http.StatusNotFound
	case dErrors.CodeUserAlreadyExists:
		return http.StatusConflict
	case dErrors.CodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case dErrors.CodeInvalidEmailFormat, dErrors.CodeInvalidPhoneFormat, dErrors.CodeWeakPassword,
		dErrors.CodeValidation, dErrors.CodeBadRequest, dErrors.CodeInvalidRestaurantCode:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
