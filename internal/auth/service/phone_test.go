package service

import (
	"errors"

	"go.uber.org/mock/gomock"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
)

const testPhone = "+14155550123"

func (s *ServiceSuite) TestInitiatePhoneAuth() {
	s.Run("dispatches an otp", func() {
		s.auth.EXPECT().InitiatePhoneAuth(gomock.Any(), mustPhone(s.T(), testPhone)).Return(true, nil)

		resp, err := s.service.InitiatePhoneAuth(s.ctx, &models.PhoneAuthRequest{Phone: " " + testPhone + " "})
		s.Require().NoError(err)
		s.Equal("OTP sent successfully", resp.Message)
		s.Equal(testPhone, resp.Phone)
		s.True(resp.OTPSent)
	})

	s.Run("resend uses its own message", func() {
		s.auth.EXPECT().InitiatePhoneAuth(gomock.Any(), gomock.Any()).Return(true, nil)

		resp, err := s.service.ResendOTP(s.ctx, &models.PhoneAuthRequest{Phone: testPhone})
		s.Require().NoError(err)
		s.Equal("OTP resent successfully", resp.Message)
	})

	s.Run("rejects numbers without a country prefix", func() {
		_, err := s.service.InitiatePhoneAuth(s.ctx, &models.PhoneAuthRequest{Phone: "4155550123"})
		s.requireCode(err, dErrors.CodeInvalidPhoneFormat)
	})

	s.Run("provider refusal is an authentication error", func() {
		s.auth.EXPECT().InitiatePhoneAuth(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := s.service.InitiatePhoneAuth(s.ctx, &models.PhoneAuthRequest{Phone: testPhone})
		s.requireCode(err, dErrors.CodeAuth)
		s.Equal("Failed to send OTP", err.Error())
	})
}

func (s *ServiceSuite) TestVerifyPhoneOTP() {
	otp := func() models.OTPCode {
		code, err := models.NewOTPCode("123456")
		s.Require().NoError(err)
		return code
	}

	s.Run("stores the display name when the account has none", func() {
		name := "Priya"
		s.auth.EXPECT().VerifyPhoneOTP(gomock.Any(), mustPhone(s.T(), testPhone), otp(), &name).
			Return(success(activeUser(s.now), providerSession(0)), nil)
		s.auth.EXPECT().UpdateUserMetadata(gomock.Any(), testUserID, map[string]any{"name": "Priya"}).Return(true, nil)

		resp, err := s.service.VerifyPhoneOTP(s.ctx, &models.OTPVerificationRequest{Phone: testPhone, OTPCode: "123456", Name: &name})
		s.Require().NoError(err)
		s.Equal("Priya", *resp.User.Name)
		s.Contains(s.auditActions(testUserID), "otp_verified")
	})

	s.Run("existing display name is kept", func() {
		name := "Priya"
		user := activeUser(s.now)
		user.Name = "Existing"
		s.auth.EXPECT().VerifyPhoneOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(success(user, providerSession(0)), nil)
		s.auth.EXPECT().UpdateUserMetadata(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		resp, err := s.service.VerifyPhoneOTP(s.ctx, &models.OTPVerificationRequest{Phone: testPhone, OTPCode: "123456", Name: &name})
		s.Require().NoError(err)
		s.Equal("Existing", *resp.User.Name)
	})

	s.Run("metadata failure does not fail the login", func() {
		name := "Priya"
		s.auth.EXPECT().VerifyPhoneOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(success(activeUser(s.now), providerSession(0)), nil)
		s.auth.EXPECT().UpdateUserMetadata(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("admin api down"))

		resp, err := s.service.VerifyPhoneOTP(s.ctx, &models.OTPVerificationRequest{Phone: testPhone, OTPCode: "123456", Name: &name})
		s.Require().NoError(err)
		s.Equal(testAccessToken, resp.AccessToken)
	})

	s.Run("otp must be six digits", func() {
		_, err := s.service.VerifyPhoneOTP(s.ctx, &models.OTPVerificationRequest{Phone: testPhone, OTPCode: "12345"})
		s.requireCode(err, dErrors.CodeInvalidOTP)
	})

	s.Run("expired wording maps to otp expired in any case", func() {
		for _, message := range []string{"Token has expired or is invalid", "OTP EXPIRED"} {
			s.auth.EXPECT().VerifyPhoneOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(models.Failed(message), nil)

			_, err := s.service.VerifyPhoneOTP(s.ctx, &models.OTPVerificationRequest{Phone: testPhone, OTPCode: "123456"})
			s.requireCode(err, dErrors.CodeOTPExpired)
		}
	})

	s.Run("other failures map to invalid otp", func() {
		s.auth.EXPECT().VerifyPhoneOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.Failed("Verification failed"), nil)

		_, err := s.service.VerifyPhoneOTP(s.ctx, &models.OTPVerificationRequest{Phone: testPhone, OTPCode: "123456"})
		s.requireCode(err, dErrors.CodeInvalidOTP)
		s.Equal("Invalid or expired OTP", err.Error())
	})
}

func (s *ServiceSuite) TestPhoneSignUp() {
	s.Run("dispatch then verify", func() {
		gomock.InOrder(
			s.auth.EXPECT().InitiatePhoneAuth(gomock.Any(), gomock.Any()).Return(true, nil),
			s.auth.EXPECT().VerifyPhoneOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(success(activeUser(s.now), providerSession(0)), nil),
		)

		resp, err := s.service.PhoneSignUp(s.ctx, &models.PhoneSignUpRequest{Phone: testPhone, OTPCode: "654321"})
		s.Require().NoError(err)
		s.Equal(testUserID, resp.User.ID)
	})

	s.Run("dispatch failure skips verification", func() {
		s.auth.EXPECT().InitiatePhoneAuth(gomock.Any(), gomock.Any()).Return(false, nil)
		s.auth.EXPECT().VerifyPhoneOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.service.PhoneSignUp(s.ctx, &models.PhoneSignUpRequest{Phone: testPhone, OTPCode: "654321"})
		s.requireCode(err, dErrors.CodeAuth)
	})
}
