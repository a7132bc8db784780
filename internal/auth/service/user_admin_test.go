package service

import (
	"go.uber.org/mock/gomock"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
)

const targetUserID = "3d2c1b0a-9f8e-4d7c-8b6a-5f4e3d2c1b0a"

func (s *ServiceSuite) TestUserAdministration() {
	owner := &models.UserContext{UserID: testUserID, Role: models.RoleOwner, RestaurantID: strRef(testRestaurantID)}
	staffOf := func(restaurantID string) *models.User {
		u := models.NewUser(targetUserID, s.now)
		u.Role = models.RoleStaff
		u.RestaurantID = strRef(restaurantID)
		return u
	}

	s.Run("owner deactivates staff of their restaurant", func() {
		s.auth.EXPECT().GetUserByID(gomock.Any(), targetUserID).Return(staffOf(testRestaurantID), nil)
		s.users.EXPECT().DeactivateUser(gomock.Any(), targetUserID).Return(true, nil)

		resp, err := s.service.DeactivateUser(s.ctx, owner, targetUserID)
		s.Require().NoError(err)
		s.True(resp.Success)
		s.Contains(s.auditActions(targetUserID), "user_deactivated")
	})

	s.Run("owner activates staff of their restaurant", func() {
		s.auth.EXPECT().GetUserByID(gomock.Any(), targetUserID).Return(staffOf(testRestaurantID), nil)
		s.users.EXPECT().ActivateUser(gomock.Any(), targetUserID).Return(true, nil)

		_, err := s.service.ActivateUser(s.ctx, owner, targetUserID)
		s.Require().NoError(err)
	})

	s.Run("other tenants are off limits", func() {
		s.auth.EXPECT().GetUserByID(gomock.Any(), targetUserID).Return(staffOf(testTableID), nil)
		s.users.EXPECT().DeactivateUser(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.service.DeactivateUser(s.ctx, owner, targetUserID)
		s.requireCode(err, dErrors.CodeMultiTenantViolation)
	})

	s.Run("restaurant owners cannot administer platform accounts", func() {
		platformOwner := models.NewUser(targetUserID, s.now)
		platformOwner.Role = models.RoleOwner
		s.auth.EXPECT().GetUserByID(gomock.Any(), targetUserID).Return(platformOwner, nil)
		s.users.EXPECT().DeactivateUser(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.service.DeactivateUser(s.ctx, owner, targetUserID)
		s.requireCode(err, dErrors.CodeMultiTenantViolation)
	})

	s.Run("platform owners administer any account", func() {
		platform := &models.UserContext{UserID: testUserID, Role: models.RoleOwner}
		s.auth.EXPECT().GetUserByID(gomock.Any(), targetUserID).Return(staffOf(testRestaurantID), nil)
		s.users.EXPECT().ActivateUser(gomock.Any(), targetUserID).Return(true, nil)

		_, err := s.service.ActivateUser(s.ctx, platform, targetUserID)
		s.Require().NoError(err)
	})

	s.Run("managers cannot administer users", func() {
		manager := &models.UserContext{UserID: testUserID, Role: models.RoleManager, RestaurantID: strRef(testRestaurantID)}

		_, err := s.service.ActivateUser(s.ctx, manager, targetUserID)
		s.requireCode(err, dErrors.CodeInsufficientPermissions)
	})

	s.Run("unknown user", func() {
		s.auth.EXPECT().GetUserByID(gomock.Any(), targetUserID).Return(nil, nil)

		_, err := s.service.ActivateUser(s.ctx, owner, targetUserID)
		s.requireCode(err, dErrors.CodeUserNotFound)
	})
}
