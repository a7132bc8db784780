package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestUserContextPredicates(t *testing.T) {
	t.Run("has role", func(t *testing.T) {
		c := &UserContext{Role: RoleStaff}
		assert.True(t, c.HasRole(RoleStaff))
		assert.False(t, c.HasRole(RoleManager))
		assert.True(t, c.HasAnyRole(RoleManager, RoleStaff))
		assert.False(t, c.HasAnyRole(RoleManager, RoleKitchen))
		assert.False(t, c.HasAnyRole())
	})

	t.Run("owner holds every permission", func(t *testing.T) {
		c := &UserContext{Role: RoleOwner}
		for _, p := range []string{PermissionManageMenu, PermissionViewAnalytics, "not_in_the_map", ""} {
			assert.True(t, c.HasPermission(p))
		}
	})

	t.Run("non owner reads the mapping with false default", func(t *testing.T) {
		c := &UserContext{Role: RoleManager, Permissions: map[string]bool{
			PermissionManageMenu:  true,
			PermissionManageStaff: false,
		}}
		assert.True(t, c.HasPermission(PermissionManageMenu))
		assert.False(t, c.HasPermission(PermissionManageStaff))
		assert.False(t, c.HasPermission(PermissionViewAnalytics))
	})

	t.Run("restaurant access", func(t *testing.T) {
		c := &UserContext{RestaurantID: strPtr("r-1")}
		assert.True(t, c.CanAccessRestaurant(nil))
		assert.True(t, c.CanAccessRestaurant(strPtr("r-1")))
		assert.False(t, c.CanAccessRestaurant(strPtr("r-2")))

		platform := &UserContext{}
		assert.False(t, platform.CanAccessRestaurant(strPtr("r-1")))
	})
}

func TestNewUserContext(t *testing.T) {
	t.Run("app metadata wins over user metadata", func(t *testing.T) {
		ctx := NewUserContext(&Claims{
			Subject: "u-1",
			Email:   "a@example.com",
			AppMetadata: map[string]any{
				"role":          RoleStaff,
				"restaurant_id": "r-app",
				"permissions":   map[string]any{PermissionManageOrders: true},
			},
			UserMetadata: map[string]any{
				"role":          RoleOwner,
				"restaurant_id": "r-user",
				"permissions":   map[string]any{PermissionManageStaff: true},
			},
		})
		assert.Equal(t, RoleStaff, ctx.Role)
		assert.Equal(t, "r-app", *ctx.RestaurantID)
		assert.True(t, ctx.HasPermission(PermissionManageOrders))
		assert.False(t, ctx.HasPermission(PermissionManageStaff))
	})

	t.Run("falls back to user metadata and customer role", func(t *testing.T) {
		ctx := NewUserContext(&Claims{
			Subject:      "u-2",
			UserMetadata: map[string]any{"restaurant_id": "r-user"},
		})
		assert.Equal(t, RoleCustomer, ctx.Role)
		assert.Equal(t, "r-user", *ctx.RestaurantID)
		assert.Empty(t, ctx.Permissions)
	})

	t.Run("user metadata cannot grant a staff role", func(t *testing.T) {
		ctx := NewUserContext(&Claims{
			Subject:     "u-3",
			AppMetadata: map[string]any{"provider": "email"},
			UserMetadata: map[string]any{
				"role":          RoleOwner,
				"restaurant_id": "victim-restaurant",
				"permissions":   map[string]any{PermissionManageStaff: true},
			},
		})
		assert.Equal(t, RoleCustomer, ctx.Role)
		assert.False(t, ctx.HasRole(RoleOwner))
		assert.False(t, ctx.HasPermission(PermissionManageStaff))
		assert.Empty(t, ctx.Permissions)
	})

	t.Run("user metadata restaurant is ignored for staff roles", func(t *testing.T) {
		ctx := NewUserContext(&Claims{
			AppMetadata:  map[string]any{"role": RoleManager},
			UserMetadata: map[string]any{"restaurant_id": "victim-restaurant"},
		})
		assert.Equal(t, RoleManager, ctx.Role)
		assert.Nil(t, ctx.RestaurantID)
	})

	t.Run("permission lists are accepted", func(t *testing.T) {
		ctx := NewUserContext(&Claims{
			AppMetadata: map[string]any{"permissions": []any{PermissionManageMenu}},
		})
		assert.True(t, ctx.HasPermission(PermissionManageMenu))
	})

	t.Run("anonymous session context", func(t *testing.T) {
		ctx := NewAnonymousUserContext(&AnonymousSession{SessionID: "s-1", RestaurantID: "r-1"})
		assert.Equal(t, RoleAnonymous, ctx.Role)
		assert.Equal(t, "s-1", ctx.UserID)
		assert.True(t, ctx.IsAnonymous)
		assert.True(t, ctx.CanAccessRestaurant(strPtr("r-1")))
	})
}
