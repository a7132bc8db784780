package service

import (
	"context"

	"github.com/be1500616/zergoqrf/internal/audit"
	"github.com/be1500616/zergoqrf/internal/auth/models"
	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
)

// GetUserProfile combines the caller's token-derived identity with the
// current display name and active flag from the user record.
func (s *Service) GetUserProfile(ctx context.Context, uc *models.UserContext) (*models.UserProfileResponse, error) {
	if uc == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "")
	}
	user, err := s.auth.GetUserByID(ctx, uc.UserID)
	if err != nil {
		return nil, s.unexpected(ctx, audit.EventAuthFailed, err, "Failed to load user profile", "user_id", uc.UserID)
	}
	if user == nil {
		return nil, dErrors.New(dErrors.CodeUserNotFound, "")
	}

	permissions := uc.Permissions
	if permissions == nil {
		permissions = map[string]bool{}
	}
	profile := &models.UserProfileResponse{
		ID:           uc.UserID,
		Role:         uc.Role,
		RestaurantID: uc.RestaurantID,
		Permissions:  permissions,
		IsActive:     user.IsActive,
	}
	if uc.Email != "" {
		profile.Email = strPtr(uc.Email)
	}
	if uc.Phone != "" {
		profile.Phone = strPtr(uc.Phone)
	}
	if user.Name != "" {
		profile.Name = strPtr(user.Name)
	}
	return profile, nil
}
