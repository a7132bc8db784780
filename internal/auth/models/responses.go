package models

import "time"

// DefaultExpiresIn is reported when the provider does not state a lifetime.
const DefaultExpiresIn = 3600

// UserDTO is the public projection of a user.
type UserDTO struct {
	ID           string          `json:"id"`
	Email        *string         `json:"email"`
	Phone        *string         `json:"phone"`
	Name         *string         `json:"name"`
	Role         string          `json:"role"`
	RestaurantID *string         `json:"restaurant_id"`
	Permissions  map[string]bool `json:"permissions"`
	IsActive     bool            `json:"is_active"`
}

// AuthResponse is returned by every credential based login.
type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	TokenType    string  `json:"token_type"`
	ExpiresIn    int     `json:"expires_in"`
	User         UserDTO `json:"user"`
}

// AnonymousSessionResponse describes a guest session; ExpiresAt is RFC 3339.
type AnonymousSessionResponse struct {
	SessionID    string  `json:"session_id"`
	SessionToken string  `json:"session_token,omitempty"`
	RestaurantID string  `json:"restaurant_id"`
	TableID      *string `json:"table_id"`
	ExpiresAt    string  `json:"expires_at"`
}

// UserProfileResponse is returned by GET /auth/me.
type UserProfileResponse struct {
	ID           string          `json:"id"`
	Email        *string         `json:"email"`
	Phone        *string         `json:"phone"`
	Name         *string         `json:"name"`
	Role         string          `json:"role"`
	RestaurantID *string         `json:"restaurant_id"`
	Permissions  map[string]bool `json:"permissions"`
	IsActive     bool            `json:"is_active"`
}

type PhoneAuthResponse struct {
	Message string `json:"message"`
	Phone   string `json:"phone"`
	OTPSent bool   `json:"otp_sent"`
}

type SignOutResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

type SessionValidationResponse struct {
	Valid bool `json:"valid"`
}

type CleanupResponse struct {
	Deleted int `json:"deleted"`
}

type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// RestaurantInfo is the branding shown to a guest after code entry.
type RestaurantInfo struct {
	RestaurantID   string  `json:"restaurant_id"`
	Name           string  `json:"name"`
	LogoURL        *string `json:"logo_url"`
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
}

type RestaurantCodeResponse struct {
	Valid        bool           `json:"valid"`
	Restaurant   RestaurantInfo `json:"restaurant"`
	SessionToken string         `json:"session_token"`
	Message      string         `json:"message"`
}

// ToUserDTO projects a user entity. Optional fields render as JSON null.
func ToUserDTO(u *User) UserDTO {
	dto := UserDTO{
		ID:           u.ID,
		Role:         u.Role,
		RestaurantID: u.RestaurantID,
		Permissions:  u.Permissions,
		IsActive:     u.IsActive,
	}
	if dto.Permissions == nil {
		dto.Permissions = map[string]bool{}
	}
	if u.Email != nil {
		v := u.Email.Value()
		dto.Email = &v
	}
	if u.Phone != nil {
		v := u.Phone.Value()
		dto.Phone = &v
	}
	if u.Name != "" {
		name := u.Name
		dto.Name = &name
	}
	return dto
}

// ToAnonymousSessionResponse formats a guest session for the wire.
func ToAnonymousSessionResponse(s *AnonymousSession) *AnonymousSessionResponse {
	return &AnonymousSessionResponse{
		SessionID:    s.SessionID,
		SessionToken: s.SessionToken,
		RestaurantID: s.RestaurantID,
		TableID:      s.TableID,
		ExpiresAt:    s.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

// RestaurantContextResponse echoes the caller as resolved for one restaurant.
type RestaurantContextResponse struct {
	RestaurantID string          `json:"restaurant_id"`
	UserID       string          `json:"user_id"`
	Role         string          `json:"role"`
	Permissions  map[string]bool `json:"permissions"`
	IsAnonymous  bool            `json:"is_anonymous"`
}
