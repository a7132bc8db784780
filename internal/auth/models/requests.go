package models

import (
	s "github.com/be1500616/zergoqrf/pkg/string"
)

// EmailSignInRequest is the body of POST /auth/signin/email.
type EmailSignInRequest struct {
	Email    string `json:"email" validate:"required,notblank,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

func (r *EmailSignInRequest) Sanitize() {
	s.TrimStrings(&r.Email)
}

// EmailSignUpRequest is the body of POST /auth/signup/email.
type EmailSignUpRequest struct {
	Email        string  `json:"email" validate:"required,notblank,max=255"`
	Password     string  `json:"password" validate:"required,max=128"`
	Name         *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Role         string  `json:"role,omitempty" validate:"omitempty,oneof=customer"`
	RestaurantID *string `json:"restaurant_id,omitempty" validate:"omitempty,uuid"`
}

func (r *EmailSignUpRequest) Sanitize() {
	s.TrimStrings(&r.Email, &r.Role)
	r.Name = s.TrimOptional(r.Name)
	r.RestaurantID = s.TrimOptional(r.RestaurantID)
}

func (r *EmailSignUpRequest) Normalize() {
	if r.Role == "" {
		r.Role = RoleCustomer
	}
}

// PhoneAuthRequest starts or resends an OTP.
type PhoneAuthRequest struct {
	Phone string `json:"phone" validate:"required,notblank"`
}

func (r *PhoneAuthRequest) Sanitize() {
	s.TrimStrings(&r.Phone)
}

// OTPVerificationRequest completes a phone login.
type OTPVerificationRequest struct {
	Phone   string  `json:"phone" validate:"required,notblank"`
	OTPCode string  `json:"otp_code" validate:"required,notblank"`
	Name    *string `json:"name,omitempty" validate:"omitempty,max=100"`
}

func (r *OTPVerificationRequest) Sanitize() {
	s.TrimStrings(&r.Phone, &r.OTPCode)
	r.Name = s.TrimOptional(r.Name)
}

// PhoneSignUpRequest runs dispatch and verification back to back.
type PhoneSignUpRequest struct {
	Phone   string  `json:"phone" validate:"required,notblank"`
	OTPCode string  `json:"otp_code" validate:"required,notblank"`
	Name    *string `json:"name,omitempty" validate:"omitempty,max=100"`
}

func (r *PhoneSignUpRequest) Sanitize() {
	s.TrimStrings(&r.Phone, &r.OTPCode)
	r.Name = s.TrimOptional(r.Name)
}

// AnonymousSessionRequest creates a table-bound guest session. UUID syntax is
// checked by the use case so that it can report a tenant violation.
type AnonymousSessionRequest struct {
	RestaurantID string  `json:"restaurant_id" validate:"required,notblank"`
	TableID      *string `json:"table_id,omitempty"`
}

func (r *AnonymousSessionRequest) Sanitize() {
	s.TrimStrings(&r.RestaurantID)
	r.TableID = s.TrimOptional(r.TableID)
}

// SessionTokenRequest carries a guest session token for validation.
type SessionTokenRequest struct {
	SessionToken string `json:"session_token"`
}

// ExtendSessionRequest optionally overrides the number of hours to add.
type ExtendSessionRequest struct {
	ExtendHours int `json:"extend_hours,omitempty" validate:"omitempty,min=1,max=168"`
}

func (r *ExtendSessionRequest) Normalize() {
	if r.ExtendHours == 0 {
		r.ExtendHours = 24
	}
}

// RefreshTokenRequest exchanges a refresh token for a new session.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"max=4096"`
}

// RevokeTokenRequest blacklists a token before its natural expiry.
type RevokeTokenRequest struct {
	Token string `json:"token" validate:"max=4096"`
}

// RestaurantCodeRequest is the guest entry by printed restaurant code.
type RestaurantCodeRequest struct {
	Code string `json:"code" validate:"required"`
}
