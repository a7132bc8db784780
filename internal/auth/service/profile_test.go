package service

import (
	"errors"

	"go.uber.org/mock/gomock"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
)

func (s *ServiceSuite) TestGetUserProfile() {
	uc := &models.UserContext{
		UserID:       testUserID,
		Email:        "staff@example.com",
		Role:         models.RoleStaff,
		RestaurantID: strRef(testRestaurantID),
		Permissions:  map[string]bool{models.PermissionManageOrders: true},
	}

	s.Run("identity from the token, display data from the record", func() {
		user := activeUser(s.now)
		user.Name = "Sam"
		user.Role = models.RoleCustomer
		s.auth.EXPECT().GetUserByID(gomock.Any(), testUserID).Return(user, nil)

		profile, err := s.service.GetUserProfile(s.ctx, uc)
		s.Require().NoError(err)
		s.Equal(models.RoleStaff, profile.Role)
		s.Equal("staff@example.com", *profile.Email)
		s.Nil(profile.Phone)
		s.Equal("Sam", *profile.Name)
		s.True(profile.IsActive)
		s.True(profile.Permissions[models.PermissionManageOrders])
	})

	s.Run("missing user", func() {
		s.auth.EXPECT().GetUserByID(gomock.Any(), testUserID).Return(nil, nil)

		_, err := s.service.GetUserProfile(s.ctx, uc)
		s.requireCode(err, dErrors.CodeUserNotFound)
	})

	s.Run("lookup failure", func() {
		s.auth.EXPECT().GetUserByID(gomock.Any(), testUserID).Return(nil, errors.New("boom"))

		_, err := s.service.GetUserProfile(s.ctx, uc)
		s.requireCode(err, dErrors.CodeAuth)
	})
}

func (s *ServiceSuite) TestSignOut() {
	s.Run("provider failure still reports success", func() {
		uc := &models.UserContext{UserID: testUserID, Role: models.RoleCustomer, Token: testAccessToken}
		s.auth.EXPECT().SignOut(gomock.Any(), testUserID).Return(false, errors.New("provider unavailable"))
		s.tokens.EXPECT().BlacklistToken(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))

		resp := s.service.SignOut(s.ctx, uc)
		s.True(resp.Success)
		s.Equal("Signed out successfully", resp.Message)
	})

	s.Run("bearer token is revoked", func() {
		uc := &models.UserContext{UserID: testUserID, Role: models.RoleCustomer, Token: testAccessToken}
		s.auth.EXPECT().SignOut(gomock.Any(), testUserID).Return(true, nil)
		s.tokens.EXPECT().BlacklistToken(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, token models.Token) (bool, error) {
				s.Equal(testAccessToken, token.Value())
				return true, nil
			})

		s.True(s.service.SignOut(s.ctx, uc).Success)
		s.Contains(s.auditActions(testUserID), "signout")
	})

	s.Run("anonymous and missing contexts skip the provider", func() {
		s.auth.EXPECT().SignOut(gomock.Any(), gomock.Any()).Times(0)

		s.True(s.service.SignOut(s.ctx, nil).Success)
		s.True(s.service.SignOut(s.ctx, &models.UserContext{UserID: "guest", IsAnonymous: true}).Success)
	})
}
