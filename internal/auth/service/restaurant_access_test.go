package service

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	"github.com/be1500616/zergoqrf/internal/restaurant"
	"github.com/be1500616/zergoqrf/internal/sentinel"
	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
)

func (s *ServiceSuite) TestAccessRestaurantByCode() {
	s.Run("valid code opens a guest session", func() {
		logo := "https://cdn.example.com/logo.png"
		s.restaurants.EXPECT().FindByCode(gomock.Any(), "TRATT01").Return(&restaurant.Restaurant{
			ID:       testRestaurantID,
			Name:     "Trattoria",
			Code:     "TRATT01",
			LogoURL:  &logo,
			IsActive: true,
		}, nil)
		s.sessions.EXPECT().CreateAnonymousSession(gomock.Any(), testRestaurantID, nil, 24*time.Hour).
			Return(s.guestSession(s.now.Add(24*time.Hour)), nil)

		resp, err := s.service.AccessRestaurantByCode(s.ctx, &models.RestaurantCodeRequest{Code: " tratt01 "})
		s.Require().NoError(err)
		s.True(resp.Valid)
		s.Equal("Welcome to Trattoria!", resp.Message)
		s.Equal(testSessionToken, resp.SessionToken)
		s.Equal(&logo, resp.Restaurant.LogoURL)
		s.Nil(resp.Restaurant.PrimaryColor)
	})

	for _, code := range []string{"ABC12", "ABCDEFGHI", ""} {
		s.Run(fmt.Sprintf("code %q has the wrong length", code), func() {
			s.restaurants.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Times(0)

			_, err := s.service.AccessRestaurantByCode(s.ctx, &models.RestaurantCodeRequest{Code: code})
			s.requireCode(err, dErrors.CodeInvalidRestaurantCode)
		})
	}

	s.Run("unknown code", func() {
		s.restaurants.EXPECT().FindByCode(gomock.Any(), "NOPE0000").
			Return(nil, fmt.Errorf("restaurant not found: %w", sentinel.ErrNotFound))

		_, err := s.service.AccessRestaurantByCode(s.ctx, &models.RestaurantCodeRequest{Code: "NOPE0000"})
		s.requireCode(err, dErrors.CodeRestaurantNotFound)
	})

	s.Run("directory failure", func() {
		s.restaurants.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := s.service.AccessRestaurantByCode(s.ctx, &models.RestaurantCodeRequest{Code: "ABCDEF"})
		s.requireCode(err, dErrors.CodeAuth)
	})
}
