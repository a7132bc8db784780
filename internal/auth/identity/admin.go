package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	"github.com/be1500616/zergoqrf/internal/sentinel"
	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

// banForever is the ban duration used to deactivate an account (100 years).
const banForever = "876000h"

// CreateUser provisions a confirmed account through the admin API.
func (c *Client) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	body := adminUserBody(user)
	body["email_confirm"] = user.Email != nil
	body["phone_confirm"] = user.Phone != nil

	var created providerUser
	err := c.do(ctx, call{
		operation: "admin_create_user",
		method:    http.MethodPost,
		path:      "/admin/users",
		body:      body,
		admin:     true,
	}, &created)
	var rej *rejection
	if errors.As(err, &rej) {
		if rej.status == http.StatusUnprocessableEntity {
			return nil, fmt.Errorf("create user: %s: %w", rej.message, sentinel.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("create user: %s: %w", rej.message, sentinel.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}
	return toUser(&created, requestcontext.Now(ctx)), nil
}

// UpdateUser writes profile and authorization fields back to the provider.
func (c *Client) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	var updated providerUser
	err := c.do(ctx, call{
		operation: "admin_update_user",
		method:    http.MethodPut,
		path:      "/admin/users/" + url.PathEscape(user.ID),
		body:      adminUserBody(user),
		admin:     true,
	}, &updated)
	if notFound(err) {
		return nil, fmt.Errorf("update user: %w", sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return toUser(&updated, requestcontext.Now(ctx)), nil
}

func (c *Client) DeleteUser(ctx context.Context, userID string) (bool, error) {
	err := c.do(ctx, call{
		operation: "admin_delete_user",
		method:    http.MethodDelete,
		path:      "/admin/users/" + url.PathEscape(userID),
		admin:     true,
	}, nil)
	return c.adminOutcome(err)
}

// ActivateUser lifts any ban on the account.
func (c *Client) ActivateUser(ctx context.Context, userID string) (bool, error) {
	return c.setBan(ctx, userID, "none")
}

// DeactivateUser bans the account so new logins are refused.
func (c *Client) DeactivateUser(ctx context.Context, userID string) (bool, error) {
	return c.setBan(ctx, userID, banForever)
}

func (c *Client) setBan(ctx context.Context, userID, duration string) (bool, error) {
	err := c.do(ctx, call{
		operation: "admin_ban_user",
		method:    http.MethodPut,
		path:      "/admin/users/" + url.PathEscape(userID),
		body:      map[string]string{"ban_duration": duration},
		admin:     true,
	}, nil)
	return c.adminOutcome(err)
}

func (c *Client) adminOutcome(err error) (bool, error) {
	if notFound(err) {
		return false, nil
	}
	if msg, ok := rejected(err); ok {
		return false, errors.New("identity provider rejected admin request: " + msg)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func adminUserBody(user *models.User) map[string]any {
	appMetadata := map[string]any{"role": user.Role}
	if user.RestaurantID != nil {
		appMetadata["restaurant_id"] = *user.RestaurantID
	}
	if len(user.Permissions) > 0 {
		appMetadata["permissions"] = user.Permissions
	}
	body := map[string]any{
		"app_metadata":  appMetadata,
		"user_metadata": map[string]any{"name": user.Name},
	}
	if user.Email != nil {
		body["email"] = user.Email.Value()
	}
	if user.Phone != nil {
		body["phone"] = user.Phone.Value()
	}
	return body
}
