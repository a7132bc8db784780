package service

import (
	"errors"

	"go.uber.org/mock/gomock"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
)

func (s *ServiceSuite) TestSignInWithEmail() {
	req := func() *models.EmailSignInRequest {
		return &models.EmailSignInRequest{Email: "Alice@Example.com", Password: "correct-horse"}
	}

	s.Run("returns tokens with the default lifetime", func() {
		s.auth.EXPECT().
			SignInWithEmail(gomock.Any(), mustEmail(s.T(), "alice@example.com"), "correct-horse").
			Return(success(activeUser(s.now), providerSession(0)), nil)

		resp, err := s.service.SignInWithEmail(s.ctx, req())
		s.Require().NoError(err)
		s.Equal(testAccessToken, resp.AccessToken)
		s.Equal(testRefreshToken, resp.RefreshToken)
		s.Equal("bearer", resp.TokenType)
		s.Equal(3600, resp.ExpiresIn)
		s.Equal(testUserID, resp.User.ID)
		s.Contains(s.auditActions(testUserID), "signin_success")
	})

	s.Run("provider lifetime wins over the default", func() {
		s.auth.EXPECT().SignInWithEmail(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(success(activeUser(s.now), providerSession(7200)), nil)

		resp, err := s.service.SignInWithEmail(s.ctx, req())
		s.Require().NoError(err)
		s.Equal(7200, resp.ExpiresIn)
	})

	s.Run("malformed email never reaches the provider", func() {
		_, err := s.service.SignInWithEmail(s.ctx, &models.EmailSignInRequest{Email: "not-an-email", Password: "correct-horse"})
		s.requireCode(err, dErrors.CodeInvalidEmailFormat)
	})

	s.Run("short password is rejected before any repository call", func() {
		s.auth.EXPECT().SignInWithEmail(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.service.SignInWithEmail(s.ctx, &models.EmailSignInRequest{Email: "alice@example.com", Password: "1234567"})
		s.requireCode(err, dErrors.CodeWeakPassword)
		s.Equal("Password must be at least 8 characters long", err.Error())
	})

	s.Run("provider failure mentioning expiry maps to token expired", func() {
		s.auth.EXPECT().SignInWithEmail(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.Failed("Refresh Token EXPIRED"), nil)

		_, err := s.service.SignInWithEmail(s.ctx, req())
		s.requireCode(err, dErrors.CodeTokenExpired)
	})

	s.Run("other provider failures map to invalid credentials without echoing provider text", func() {
		s.auth.EXPECT().SignInWithEmail(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.Failed("Invalid login credentials for internal tenant 42"), nil)

		_, err := s.service.SignInWithEmail(s.ctx, req())
		s.requireCode(err, dErrors.CodeInvalidCredentials)
		s.Equal("Invalid email or password", err.Error())
	})

	s.Run("unexpected provider error is sanitized", func() {
		cause := errors.New("dial tcp 10.0.0.7:443: connection refused")
		s.auth.EXPECT().SignInWithEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, cause)

		_, err := s.service.SignInWithEmail(s.ctx, req())
		s.requireCode(err, dErrors.CodeAuth)
		s.Equal("Authentication failed", err.Error())
		s.ErrorIs(err, cause)
	})

	s.Run("deactivated account cannot sign in", func() {
		user := activeUser(s.now)
		user.Deactivate(s.now)
		s.auth.EXPECT().SignInWithEmail(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(success(user, providerSession(0)), nil)

		_, err := s.service.SignInWithEmail(s.ctx, req())
		s.requireCode(err, dErrors.CodeAccountDeactivated)
	})
}

func (s *ServiceSuite) TestSignUpWithEmail() {
	s.Run("existing account is rejected before sign-up", func() {
		s.auth.EXPECT().GetUserByEmail(gomock.Any(), mustEmail(s.T(), "bob@example.com")).Return(activeUser(s.now), nil)
		s.auth.EXPECT().SignUpWithEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.service.SignUpWithEmail(s.ctx, &models.EmailSignUpRequest{Email: "bob@example.com", Password: "long-enough"})
		s.requireCode(err, dErrors.CodeUserAlreadyExists)
	})

	s.Run("weak password is rejected before any repository call", func() {
		s.auth.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.service.SignUpWithEmail(s.ctx, &models.EmailSignUpRequest{Email: "bob@example.com", Password: "short"})
		s.requireCode(err, dErrors.CodeWeakPassword)
	})

	s.Run("pending confirmation returns an inactive user and no tokens", func() {
		name := "Bob"
		created := models.NewUser(testUserID, s.now)
		email := mustEmail(s.T(), "bob@example.com")
		created.Email = &email
		s.auth.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
		s.auth.EXPECT().
			SignUpWithEmail(gomock.Any(), mustEmail(s.T(), "bob@example.com"), "long-enough", &name, models.RoleCustomer, strRef(testRestaurantID)).
			Return(&models.AuthenticationResult{Success: true, User: created, RequiresVerification: true}, nil)

		resp, err := s.service.SignUpWithEmail(s.ctx, &models.EmailSignUpRequest{
			Email:        "bob@example.com",
			Password:     "long-enough",
			Name:         &name,
			Role:         models.RoleCustomer,
			RestaurantID: strRef(testRestaurantID),
		})
		s.Require().NoError(err)
		s.Empty(resp.AccessToken)
		s.Empty(resp.RefreshToken)
		s.Equal(0, resp.ExpiresIn)
		s.False(resp.User.IsActive)
		s.Equal(testUserID, resp.User.ID)
		s.Equal("bob@example.com", *resp.User.Email)
		s.Equal(&name, resp.User.Name)
	})

	s.Run("pending confirmation reports the account as the provider stored it", func() {
		created := models.NewUser(testUserID, s.now)
		s.auth.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
		s.auth.EXPECT().SignUpWithEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), models.RoleStaff, gomock.Any()).
			Return(&models.AuthenticationResult{Success: true, User: created, RequiresVerification: true}, nil)

		resp, err := s.service.SignUpWithEmail(s.ctx, &models.EmailSignUpRequest{
			Email:        "bob@example.com",
			Password:     "long-enough",
			Role:         models.RoleStaff,
			RestaurantID: strRef(testRestaurantID),
		})
		s.Require().NoError(err)
		s.Equal(models.ToUserDTO(created).Role, resp.User.Role)
		s.Nil(resp.User.RestaurantID, "the requested restaurant is not echoed back")
		s.False(resp.User.IsActive)
	})

	s.Run("role defaults to customer", func() {
		s.auth.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
		s.auth.EXPECT().
			SignUpWithEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), models.RoleCustomer, gomock.Any()).
			Return(success(activeUser(s.now), providerSession(0)), nil)

		resp, err := s.service.SignUpWithEmail(s.ctx, &models.EmailSignUpRequest{Email: "carol@example.com", Password: "long-enough"})
		s.Require().NoError(err)
		s.Equal(testAccessToken, resp.AccessToken)
	})

	s.Run("provider duplicate message maps to user already exists", func() {
		s.auth.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
		s.auth.EXPECT().SignUpWithEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.Failed("User already registered"), nil)

		_, err := s.service.SignUpWithEmail(s.ctx, &models.EmailSignUpRequest{Email: "dave@example.com", Password: "long-enough"})
		s.requireCode(err, dErrors.CodeUserAlreadyExists)
	})

	s.Run("provider failure mentioning expiry maps to token expired", func() {
		s.auth.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
		s.auth.EXPECT().SignUpWithEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.Failed("Signup link has Expired"), nil)

		_, err := s.service.SignUpWithEmail(s.ctx, &models.EmailSignUpRequest{Email: "fay@example.com", Password: "long-enough"})
		s.requireCode(err, dErrors.CodeTokenExpired)
	})

	s.Run("other provider failures map to invalid credentials without echoing provider text", func() {
		s.auth.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
		s.auth.EXPECT().SignUpWithEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.Failed("Database error saving new user in schema auth"), nil)

		_, err := s.service.SignUpWithEmail(s.ctx, &models.EmailSignUpRequest{Email: "gus@example.com", Password: "long-enough"})
		s.requireCode(err, dErrors.CodeInvalidCredentials)
		s.Equal("Failed to create user account", err.Error())
	})

	s.Run("lookup failure is reported as account creation failure", func() {
		s.auth.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := s.service.SignUpWithEmail(s.ctx, &models.EmailSignUpRequest{Email: "erin@example.com", Password: "long-enough"})
		s.requireCode(err, dErrors.CodeAuth)
		s.Equal("Account creation failed", err.Error())
	})
}
