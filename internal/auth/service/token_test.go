package service

import (
	"errors"

	"go.uber.org/mock/gomock"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
)

func (s *ServiceSuite) TestRefreshToken() {
	s.Run("issues a new session", func() {
		s.auth.EXPECT().RefreshSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, token models.Token) (*models.AuthenticationResult, error) {
				s.Equal(testRefreshToken, token.Value())
				s.Equal(models.TokenTypeRefresh, token.Type())
				return success(activeUser(s.now), providerSession(1800)), nil
			})

		resp, err := s.service.RefreshToken(s.ctx, testRefreshToken)
		s.Require().NoError(err)
		s.Equal(1800, resp.ExpiresIn)
		s.Contains(s.auditActions(testUserID), "token_refreshed")
	})

	s.Run("empty refresh token", func() {
		_, err := s.service.RefreshToken(s.ctx, "")
		s.requireCode(err, dErrors.CodeInvalidToken)
	})

	s.Run("expired wording maps to token expired", func() {
		s.auth.EXPECT().RefreshSession(gomock.Any(), gomock.Any()).Return(models.Failed("Refresh token has Expired"), nil)

		_, err := s.service.RefreshToken(s.ctx, testRefreshToken)
		s.requireCode(err, dErrors.CodeTokenExpired)
	})

	s.Run("other failures map to invalid token", func() {
		s.auth.EXPECT().RefreshSession(gomock.Any(), gomock.Any()).Return(models.Failed("Invalid Refresh Token: Already Used"), nil)

		_, err := s.service.RefreshToken(s.ctx, testRefreshToken)
		s.requireCode(err, dErrors.CodeInvalidToken)
		s.Equal("Invalid refresh token", err.Error())
	})
}

func (s *ServiceSuite) TestValidateToken() {
	s.Run("claims become a user context carrying the token", func() {
		s.tokens.EXPECT().IsTokenBlacklisted(gomock.Any(), gomock.Any()).Return(false, nil)
		s.tokens.EXPECT().ValidateToken(gomock.Any(), gomock.Any()).Return(&models.Claims{
			Subject:      testUserID,
			Email:        "owner@example.com",
			AppMetadata:  map[string]any{"role": "owner", "restaurant_id": testRestaurantID},
			UserMetadata: map[string]any{"role": "customer"},
		}, nil)

		uc, err := s.service.ValidateToken(s.ctx, testAccessToken)
		s.Require().NoError(err)
		s.Require().NotNil(uc)
		s.Equal(testUserID, uc.UserID)
		s.Equal(models.RoleOwner, uc.Role)
		s.Equal(testAccessToken, uc.Token)
	})

	s.Run("revoked token is rejected without verifying claims", func() {
		s.tokens.EXPECT().IsTokenBlacklisted(gomock.Any(), gomock.Any()).Return(true, nil)
		s.tokens.EXPECT().ValidateToken(gomock.Any(), gomock.Any()).Times(0)

		uc, err := s.service.ValidateToken(s.ctx, testAccessToken)
		s.Require().NoError(err)
		s.Nil(uc)
	})

	s.Run("unverifiable token", func() {
		s.tokens.EXPECT().IsTokenBlacklisted(gomock.Any(), gomock.Any()).Return(false, nil)
		s.tokens.EXPECT().ValidateToken(gomock.Any(), gomock.Any()).Return(nil, nil)

		uc, err := s.service.ValidateToken(s.ctx, testAccessToken)
		s.Require().NoError(err)
		s.Nil(uc)
	})

	s.Run("empty token is malformed", func() {
		_, err := s.service.ValidateToken(s.ctx, "")
		s.requireCode(err, dErrors.CodeInvalidToken)
	})

	s.Run("unreadable revocation list fails closed", func() {
		s.tokens.EXPECT().IsTokenBlacklisted(gomock.Any(), gomock.Any()).Return(false, errors.New("redis: connection refused"))
		s.tokens.EXPECT().ValidateToken(gomock.Any(), gomock.Any()).Times(0)

		uc, err := s.service.ValidateToken(s.ctx, testAccessToken)
		s.requireCode(err, dErrors.CodeAuth)
		s.Nil(uc)
	})
}

func (s *ServiceSuite) TestBlacklistToken() {
	s.Run("revoking twice succeeds both times", func() {
		s.tokens.EXPECT().BlacklistToken(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)

		for range 2 {
			ok, err := s.service.BlacklistToken(s.ctx, testAccessToken)
			s.Require().NoError(err)
			s.True(ok)
		}
	})

	s.Run("empty token", func() {
		_, err := s.service.BlacklistToken(s.ctx, " ")
		s.requireCode(err, dErrors.CodeInvalidToken)
	})
}
