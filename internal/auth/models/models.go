package models

import (
	"errors"
	"slices"
	"time"
)

// Roles understood by the authorization layer. Role is free-form; these are the
// values route guards and defaults refer to.
const (
	RoleOwner     = "owner"
	RoleManager   = "manager"
	RoleStaff     = "staff"
	RoleKitchen   = "kitchen"
	RoleService   = "service"
	RoleCustomer  = "customer"
	RoleAnonymous = "anonymous"
)

// Permissions granted through provider app metadata.
const (
	PermissionManageMenu    = "manage_menu"
	PermissionManageOrders  = "manage_orders"
	PermissionManageTables  = "manage_tables"
	PermissionManageStaff   = "manage_staff"
	PermissionViewAnalytics = "view_analytics"
)

// DefaultAnonymousSessionTTL is the lifetime of a freshly created guest session.
const DefaultAnonymousSessionTTL = 24 * time.Hour

// ErrSessionExpired is returned when an operation requires a still-valid session.
var ErrSessionExpired = errors.New("session expired")

// User is the identity and authorization aggregate.
type User struct {
	ID           string
	Email        *Email
	Phone        *Phone
	Name         string
	Role         string
	RestaurantID *string
	Permissions  map[string]bool
	IsActive     bool
	IsAnonymous  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser builds an active user with the default customer role.
func NewUser(id string, now time.Time) *User {
	return &User{
		ID:          id,
		Role:        RoleCustomer,
		Permissions: map[string]bool{},
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (u *User) HasRole(role string) bool {
	return hasRole(u.Role, role)
}

func (u *User) HasAnyRole(roles ...string) bool {
	return hasAnyRole(u.Role, roles)
}

func (u *User) HasPermission(permission string) bool {
	return hasPermission(u.Role, u.Permissions, permission)
}

func (u *User) CanAccessRestaurant(restaurantID *string) bool {
	return canAccessRestaurant(u.RestaurantID, restaurantID)
}

func (u *User) Activate(now time.Time) {
	u.IsActive = true
	u.UpdatedAt = now
}

func (u *User) Deactivate(now time.Time) {
	u.IsActive = false
	u.UpdatedAt = now
}

// UpdateProfile changes the display name and contact details; nil leaves a field unchanged.
func (u *User) UpdateProfile(name *string, email *Email, phone *Phone, now time.Time) {
	if name != nil {
		u.Name = *name
	}
	if email != nil {
		e := *email
		u.Email = &e
	}
	if phone != nil {
		p := *phone
		u.Phone = &p
	}
	u.UpdatedAt = now
}

// AuthSession is a provider-issued login session.
type AuthSession struct {
	SessionID    string
	UserID       string
	AccessToken  Token
	RefreshToken *Token
	ExpiresIn    int
	ExpiresAt    *time.Time
	IsAnonymous  bool
	RestaurantID *string
	TableID      *string
	CreatedAt    time.Time
}

// IsExpired reports whether the session has passed its expiry. Sessions without
// an expiry never expire locally.
func (s *AuthSession) IsExpired(now time.Time) bool {
	if s.ExpiresAt == nil {
		return false
	}
	return !now.Before(*s.ExpiresAt)
}

func (s *AuthSession) IsValid(now time.Time) bool {
	return !s.IsExpired(now)
}

// Refresh returns a replacement session carrying new tokens. The receiver is not modified.
func (s *AuthSession) Refresh(access Token, refresh *Token, expiresAt *time.Time, now time.Time) *AuthSession {
	next := *s
	next.AccessToken = access
	next.RefreshToken = refresh
	next.ExpiresAt = expiresAt
	next.CreatedAt = now
	return &next
}

// AnonymousSession is a tenant-scoped guest session bound to a table or restaurant code.
type AnonymousSession struct {
	SessionID    string
	SessionToken string
	RestaurantID string
	TableID      *string
	ExpiresAt    time.Time
	CreatedAt    time.Time
	IsActive     bool
}

func (s *AnonymousSession) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

func (s *AnonymousSession) IsValid(now time.Time) bool {
	return s.IsActive && !s.IsExpired(now)
}

// Extend returns a copy whose expiry is pushed forward by d. Expired sessions
// cannot be revived.
func (s *AnonymousSession) Extend(d time.Duration, now time.Time) (*AnonymousSession, error) {
	if s.IsExpired(now) {
		return nil, ErrSessionExpired
	}
	next := *s
	next.ExpiresAt = s.ExpiresAt.Add(d)
	return &next, nil
}

// AuthenticationResult carries the outcome of a provider call.
// RequiresVerification means the account exists but no session was issued.
type AuthenticationResult struct {
	Success              bool
	User                 *User
	Session              *AuthSession
	ErrorMessage         string
	RequiresVerification bool
}

// Failed builds an unsuccessful result.
func Failed(message string) *AuthenticationResult {
	return &AuthenticationResult{Success: false, ErrorMessage: message}
}

func hasRole(actual, role string) bool {
	return actual == role || actual == RoleOwner
}

func hasAnyRole(actual string, roles []string) bool {
	return actual == RoleOwner || slices.Contains(roles, actual)
}

func hasPermission(role string, permissions map[string]bool, permission string) bool {
	if role == RoleOwner {
		return true
	}
	return permissions[permission]
}

func canAccessRestaurant(own, target *string) bool {
	if target == nil {
		return true
	}
	return own != nil && *own == *target
}
