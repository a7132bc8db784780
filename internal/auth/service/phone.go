package service

import (
	"context"

	"github.com/be1500616/zergoqrf/internal/audit"
	"github.com/be1500616/zergoqrf/internal/auth/models"
	"github.com/be1500616/zergoqrf/internal/platform/privacy"
	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
)

// InitiatePhoneAuth asks the provider to dispatch an OTP. Success means the
// provider accepted the dispatch, not that the message was delivered.
func (s *Service) InitiatePhoneAuth(ctx context.Context, req *models.PhoneAuthRequest) (*models.PhoneAuthResponse, error) {
	return s.dispatchOTP(ctx, req.Phone, "OTP sent successfully")
}

// ResendOTP dispatches a fresh code for a pending phone login.
func (s *Service) ResendOTP(ctx context.Context, req *models.PhoneAuthRequest) (*models.PhoneAuthResponse, error) {
	return s.dispatchOTP(ctx, req.Phone, "OTP resent successfully")
}

func (s *Service) dispatchOTP(ctx context.Context, rawPhone, message string) (*models.PhoneAuthResponse, error) {
	phone, err := models.NewPhone(rawPhone)
	if err != nil {
		s.authFailure(ctx, audit.EventOTPFailed, dErrors.CodeInvalidPhoneFormat, false)
		return nil, dErrors.NewField(dErrors.CodeInvalidPhoneFormat, "phone", "")
	}
	masked := privacy.MaskPhone(phone.Value())

	sent, err := s.auth.InitiatePhoneAuth(ctx, phone)
	if err != nil {
		return nil, s.unexpected(ctx, audit.EventOTPFailed, err, "Failed to send OTP", "subject", masked)
	}
	if !sent {
		s.authFailure(ctx, audit.EventOTPFailed, dErrors.CodeAuth, false, "subject", masked)
		return nil, dErrors.New(dErrors.CodeAuth, "Failed to send OTP")
	}

	s.logAudit(ctx, audit.EventOTPSent, "subject", masked, "country_code", phone.CountryCode())
	if s.metrics != nil {
		s.metrics.IncrementOTPDispatched()
	}
	return &models.PhoneAuthResponse{
		Message: message,
		Phone:   phone.Value(),
		OTPSent: true,
	}, nil
}

// VerifyPhoneOTP completes a phone login. A display name is stored only when
// the account does not have one yet.
func (s *Service) VerifyPhoneOTP(ctx context.Context, req *models.OTPVerificationRequest) (*models.AuthResponse, error) {
	phone, err := models.NewPhone(req.Phone)
	if err != nil {
		s.authFailure(ctx, audit.EventOTPFailed, dErrors.CodeInvalidPhoneFormat, false)
		return nil, dErrors.NewField(dErrors.CodeInvalidPhoneFormat, "phone", "")
	}
	otp, err := models.NewOTPCode(req.OTPCode)
	if err != nil {
		s.authFailure(ctx, audit.EventOTPFailed, dErrors.CodeInvalidOTP, false)
		return nil, dErrors.NewField(dErrors.CodeInvalidOTP, "otp_code", "OTP must be exactly 6 digits")
	}
	masked := privacy.MaskPhone(phone.Value())

	result, err := s.auth.VerifyPhoneOTP(ctx, phone, otp, req.Name)
	if err != nil {
		return nil, s.unexpected(ctx, audit.EventOTPFailed, err, "OTP verification failed", "subject", masked)
	}
	if !result.Success || result.User == nil || result.Session == nil {
		failure := otpFailure.classify(result.ErrorMessage)
		s.authFailure(ctx, audit.EventOTPFailed, dErrors.CodeOf(failure), false, "subject", masked)
		return nil, failure
	}
	if !result.User.IsActive {
		s.authFailure(ctx, audit.EventOTPFailed, dErrors.CodeAccountDeactivated, false, "user_id", result.User.ID)
		return nil, dErrors.New(dErrors.CodeAccountDeactivated, "")
	}

	if req.Name != nil && *req.Name != "" && result.User.Name == "" {
		if _, err := s.auth.UpdateUserMetadata(ctx, result.User.ID, map[string]any{"name": *req.Name}); err != nil {
			s.logger.WarnContext(ctx, "failed to store display name after otp verification",
				"user_id", result.User.ID,
				"error", err,
			)
		} else {
			result.User.Name = *req.Name
		}
	}

	s.logAudit(ctx, audit.EventOTPVerified,
		"user_id", result.User.ID,
		"subject", masked,
		"method", "phone",
	)
	if s.metrics != nil {
		s.metrics.IncrementSignIn("phone")
	}
	return toAuthResponse(result.User, result.Session), nil
}

// PhoneSignUp dispatches an OTP and verifies the supplied code in one call.
// The two steps are not atomic; a failure after dispatch leaves a valid OTP
// that the client can still verify through VerifyPhoneOTP.
func (s *Service) PhoneSignUp(ctx context.Context, req *models.PhoneSignUpRequest) (*models.AuthResponse, error) {
	if _, err := s.InitiatePhoneAuth(ctx, &models.PhoneAuthRequest{Phone: req.Phone}); err != nil {
		return nil, err
	}
	return s.VerifyPhoneOTP(ctx, &models.OTPVerificationRequest{
		Phone:   req.Phone,
		OTPCode: req.OTPCode,
		Name:    req.Name,
	})
}
