package service

import (
	"errors"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
)

func (s *ServiceSuite) guestSession(expiresAt time.Time) *models.AnonymousSession {
	return &models.AnonymousSession{
		SessionID:    "c7e1a0f2-3b4d-4c5e-9f60-718293a4b5c6",
		SessionToken: testSessionToken,
		RestaurantID: testRestaurantID,
		ExpiresAt:    expiresAt,
		CreatedAt:    s.now,
		IsActive:     true,
	}
}

func (s *ServiceSuite) TestCreateAnonymousSession() {
	s.Run("opens a 24 hour session", func() {
		tableID := testTableID
		s.restaurants.EXPECT().Exists(gomock.Any(), testRestaurantID).Return(true, nil)
		s.sessions.EXPECT().
			CreateAnonymousSession(gomock.Any(), testRestaurantID, &tableID, 24*time.Hour).
			DoAndReturn(func(_ any, restaurantID string, table *string, ttl time.Duration) (*models.AnonymousSession, error) {
				session := s.guestSession(s.now.Add(ttl))
				session.TableID = table
				return session, nil
			})

		resp, err := s.service.CreateAnonymousSession(s.ctx, &models.AnonymousSessionRequest{RestaurantID: testRestaurantID, TableID: &tableID})
		s.Require().NoError(err)
		s.Equal(testRestaurantID, resp.RestaurantID)
		s.Equal(testTableID, *resp.TableID)
		s.NotEmpty(resp.SessionToken)

		expiresAt, err := time.Parse(time.RFC3339, resp.ExpiresAt)
		s.Require().NoError(err)
		s.WithinDuration(s.now.Add(24*time.Hour), expiresAt, time.Second)
	})

	s.Run("restaurant id must be a uuid", func() {
		_, err := s.service.CreateAnonymousSession(s.ctx, &models.AnonymousSessionRequest{RestaurantID: "restaurant-1"})
		s.requireCode(err, dErrors.CodeMultiTenantViolation)
		s.Equal("Invalid restaurant ID format", err.Error())
	})

	s.Run("table id must be a uuid", func() {
		_, err := s.service.CreateAnonymousSession(s.ctx, &models.AnonymousSessionRequest{RestaurantID: testRestaurantID, TableID: strRef("T12")})
		s.requireCode(err, dErrors.CodeMultiTenantViolation)
		s.Equal("Invalid table ID format", err.Error())
	})

	s.Run("unknown restaurant", func() {
		s.restaurants.EXPECT().Exists(gomock.Any(), testRestaurantID).Return(false, nil)
		s.sessions.EXPECT().CreateAnonymousSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.service.CreateAnonymousSession(s.ctx, &models.AnonymousSessionRequest{RestaurantID: testRestaurantID})
		s.requireCode(err, dErrors.CodeRestaurantNotFound)
	})
}

func (s *ServiceSuite) TestValidateAnonymousSession() {
	s.Run("empty token is rejected before the repository", func() {
		s.sessions.EXPECT().ValidateAnonymousSession(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.service.ValidateAnonymousSession(s.ctx, "  ")
		s.requireCode(err, dErrors.CodeInvalidToken)
	})

	s.Run("delegates to the repository", func() {
		token, _ := models.NewSessionToken(testSessionToken)
		s.sessions.EXPECT().ValidateAnonymousSession(gomock.Any(), token).Return(true, nil)

		valid, err := s.service.ValidateAnonymousSession(s.ctx, testSessionToken)
		s.Require().NoError(err)
		s.True(valid)
	})
}

func (s *ServiceSuite) TestGetAnonymousSession() {
	s.Run("live session", func() {
		s.sessions.EXPECT().GetAnonymousSession(gomock.Any(), "sid").Return(s.guestSession(s.now.Add(time.Hour)), nil)

		resp, err := s.service.GetAnonymousSession(s.ctx, "sid")
		s.Require().NoError(err)
		s.Require().NotNil(resp)
		s.Equal(testRestaurantID, resp.RestaurantID)
	})

	s.Run("expired session is reported as absent", func() {
		s.sessions.EXPECT().GetAnonymousSession(gomock.Any(), "sid").Return(s.guestSession(s.now), nil)

		resp, err := s.service.GetAnonymousSession(s.ctx, "sid")
		s.Require().NoError(err)
		s.Nil(resp)
	})

	s.Run("missing session", func() {
		s.sessions.EXPECT().GetAnonymousSession(gomock.Any(), "sid").Return(nil, nil)

		resp, err := s.service.GetAnonymousSession(s.ctx, "sid")
		s.Require().NoError(err)
		s.Nil(resp)
	})
}

func (s *ServiceSuite) TestExtendAnonymousSession() {
	s.Run("extends by the default 24 hours", func() {
		original := s.guestSession(s.now.Add(2 * time.Hour))
		s.sessions.EXPECT().GetAnonymousSession(gomock.Any(), original.SessionID).Return(original, nil)
		s.sessions.EXPECT().ExtendAnonymousSession(gomock.Any(), original.SessionID, s.now.Add(26*time.Hour)).Return(true, nil)

		resp, err := s.service.ExtendAnonymousSession(s.ctx, original.SessionID, 0)
		s.Require().NoError(err)
		s.Equal(s.now.Add(26*time.Hour).Format(time.RFC3339), resp.ExpiresAt)
		s.Equal(s.now.Add(2*time.Hour), original.ExpiresAt, "stored entity must not be mutated")
	})

	s.Run("expired session cannot be extended", func() {
		expired := s.guestSession(s.now.Add(-time.Minute))
		s.sessions.EXPECT().GetAnonymousSession(gomock.Any(), expired.SessionID).Return(expired, nil)
		s.sessions.EXPECT().ExtendAnonymousSession(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.service.ExtendAnonymousSession(s.ctx, expired.SessionID, time.Hour)
		s.requireCode(err, dErrors.CodeSessionExpired)
		s.Equal("Cannot extend expired session", err.Error())
		s.Equal(s.now.Add(-time.Minute), expired.ExpiresAt)
	})

	s.Run("unknown session", func() {
		s.sessions.EXPECT().GetAnonymousSession(gomock.Any(), "missing").Return(nil, nil)

		_, err := s.service.ExtendAnonymousSession(s.ctx, "missing", time.Hour)
		s.requireCode(err, dErrors.CodeSessionNotFound)
	})
}

func (s *ServiceSuite) TestInvalidateAndCleanup() {
	s.Run("invalidate", func() {
		s.sessions.EXPECT().InvalidateAnonymousSession(gomock.Any(), "sid").Return(true, nil)

		ok, err := s.service.InvalidateAnonymousSession(s.ctx, "sid")
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("cleanup returns the deleted count", func() {
		s.sessions.EXPECT().CleanupExpiredSessions(gomock.Any()).Return(3, nil)

		deleted, err := s.service.CleanupExpiredSessions(s.ctx)
		s.Require().NoError(err)
		s.Equal(3, deleted)
	})

	s.Run("cleanup failure", func() {
		s.sessions.EXPECT().CleanupExpiredSessions(gomock.Any()).Return(0, errors.New("db gone"))

		_, err := s.service.CleanupExpiredSessions(s.ctx)
		s.requireCode(err, dErrors.CodeAuth)
	})
}

func (s *ServiceSuite) TestAuthenticateAnonymousSession() {
	s.Run("valid token yields an anonymous context scoped to the restaurant", func() {
		s.sessions.EXPECT().GetAnonymousSessionByToken(gomock.Any(), gomock.Any()).Return(s.guestSession(s.now.Add(time.Hour)), nil)

		uc, err := s.service.AuthenticateAnonymousSession(s.ctx, testSessionToken)
		s.Require().NoError(err)
		s.Require().NotNil(uc)
		s.True(uc.IsAnonymous)
		s.Equal(models.RoleAnonymous, uc.Role)
		s.True(uc.CanAccessRestaurant(strRef(testRestaurantID)))
		s.False(uc.CanAccessRestaurant(strRef(testTableID)))
	})

	s.Run("inactive session yields nothing", func() {
		session := s.guestSession(s.now.Add(time.Hour))
		session.IsActive = false
		s.sessions.EXPECT().GetAnonymousSessionByToken(gomock.Any(), gomock.Any()).Return(session, nil)

		uc, err := s.service.AuthenticateAnonymousSession(s.ctx, testSessionToken)
		s.Require().NoError(err)
		s.Nil(uc)
	})
}
