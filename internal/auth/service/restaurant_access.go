package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/be1500616/zergoqrf/internal/audit"
	"github.com/be1500616/zergoqrf/internal/auth/device"
	"github.com/be1500616/zergoqrf/internal/auth/models"
	"github.com/be1500616/zergoqrf/internal/restaurant"
	"github.com/be1500616/zergoqrf/internal/sentinel"
	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

const (
	minRestaurantCodeLength = 6
	maxRestaurantCodeLength = 8
)

// AccessRestaurantByCode lets a guest enter a restaurant by its printed access
// code. A valid code opens a guest session with the standard lifetime.
func (s *Service) AccessRestaurantByCode(ctx context.Context, req *models.RestaurantCodeRequest) (*models.RestaurantCodeResponse, error) {
	code := restaurant.NormalizeCode(req.Code)
	if len(code) < minRestaurantCodeLength || len(code) > maxRestaurantCodeLength {
		s.authFailure(ctx, audit.EventRestaurantCodeAccess, dErrors.CodeInvalidRestaurantCode, false)
		return nil, dErrors.NewField(dErrors.CodeInvalidRestaurantCode, "code", "Invalid restaurant code format")
	}
	if s.restaurants == nil {
		return nil, dErrors.New(dErrors.CodeRestaurantNotFound, "")
	}

	found, err := s.restaurants.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.authFailure(ctx, audit.EventRestaurantCodeAccess, dErrors.CodeRestaurantNotFound, false)
			return nil, dErrors.New(dErrors.CodeRestaurantNotFound, "Restaurant not found or inactive")
		}
		return nil, s.unexpected(ctx, audit.EventRestaurantCodeAccess, err, "Failed to validate restaurant code")
	}

	session, err := s.openGuestSession(ctx, found.ID, nil)
	if err != nil {
		return nil, err
	}
	s.logAudit(ctx, audit.EventRestaurantCodeAccess,
		"restaurant_id", found.ID,
		"session_id", session.SessionID,
		"device", device.DisplayName(requestcontext.UserAgent(ctx)),
	)

	return &models.RestaurantCodeResponse{
		Valid: true,
		Restaurant: models.RestaurantInfo{
			RestaurantID:   found.ID,
			Name:           found.Name,
			LogoURL:        found.LogoURL,
			PrimaryColor:   found.PrimaryColor,
			SecondaryColor: found.SecondaryColor,
		},
		SessionToken: session.SessionToken,
		Message:      fmt.Sprintf("Welcome to %s!", found.Name),
	}, nil
}
