package service

import (
	"context"

	"github.com/be1500616/zergoqrf/internal/audit"
	"github.com/be1500616/zergoqrf/internal/auth/models"
	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
)

// ActivateUser re-enables an account. The actor must be able to access the
// target user's restaurant.
func (s *Service) ActivateUser(ctx context.Context, actor *models.UserContext, userID string) (*models.MessageResponse, error) {
	if err := s.authorizeUserAdmin(ctx, actor, userID); err != nil {
		return nil, err
	}
	ok, err := s.users.ActivateUser(ctx, userID)
	if err != nil {
		return nil, s.unexpected(ctx, audit.EventUserActivated, err, "Failed to activate user", "user_id", userID)
	}
	if !ok {
		return nil, dErrors.New(dErrors.CodeUserNotFound, "")
	}
	s.logAudit(ctx, audit.EventUserActivated, "user_id", userID, "actor_id", actor.UserID)
	return &models.MessageResponse{Message: "User activated", Success: true}, nil
}

// DeactivateUser disables an account. Subsequent logins fail with
// ACCOUNT_DEACTIVATED; already issued tokens stay valid until they expire.
func (s *Service) DeactivateUser(ctx context.Context, actor *models.UserContext, userID string) (*models.MessageResponse, error) {
	if err := s.authorizeUserAdmin(ctx, actor, userID); err != nil {
		return nil, err
	}
	ok, err := s.users.DeactivateUser(ctx, userID)
	if err != nil {
		return nil, s.unexpected(ctx, audit.EventUserDeactivated, err, "Failed to deactivate user", "user_id", userID)
	}
	if !ok {
		return nil, dErrors.New(dErrors.CodeUserNotFound, "")
	}
	s.logAudit(ctx, audit.EventUserDeactivated, "user_id", userID, "actor_id", actor.UserID)
	return &models.MessageResponse{Message: "User deactivated", Success: true}, nil
}

func (s *Service) authorizeUserAdmin(ctx context.Context, actor *models.UserContext, userID string) error {
	if actor == nil {
		return dErrors.New(dErrors.CodeUnauthorized, "")
	}
	if !actor.HasRole(models.RoleOwner) {
		s.authFailure(ctx, audit.EventAuthFailed, dErrors.CodeInsufficientPermissions, false, "user_id", actor.UserID)
		return dErrors.New(dErrors.CodeInsufficientPermissions, "")
	}
	target, err := s.auth.GetUserByID(ctx, userID)
	if err != nil {
		return s.unexpected(ctx, audit.EventAuthFailed, err, "Failed to load user", "user_id", userID)
	}
	if target == nil {
		return dErrors.New(dErrors.CodeUserNotFound, "")
	}
	// A nil target restaurant means a platform-level account, which only a
	// platform-level owner may manage.
	platformTarget := target.RestaurantID == nil && actor.RestaurantID != nil
	if platformTarget || !actor.CanAccessRestaurant(target.RestaurantID) {
		s.authFailure(ctx, audit.EventAuthFailed, dErrors.CodeMultiTenantViolation, false, "user_id", actor.UserID)
		return dErrors.New(dErrors.CodeMultiTenantViolation, "")
	}
	return nil
}
