package identity

import (
	"strings"
	"time"

	"github.com/be1500616/zergoqrf/internal/auth/models"
)

// providerUser is the user object returned by the identity provider.
type providerUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	AppMetadata  map[string]any `json:"app_metadata"`
	UserMetadata map[string]any `json:"user_metadata"`
	BannedUntil  *time.Time     `json:"banned_until"`
	IsAnonymous  bool           `json:"is_anonymous"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// providerSession is the token grant response.
type providerSession struct {
	AccessToken  string        `json:"access_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int           `json:"expires_in"`
	ExpiresAt    int64         `json:"expires_at"`
	RefreshToken string        `json:"refresh_token"`
	User         *providerUser `json:"user"`
}

// signUpResponse is either a full session or, when confirmation is pending,
// a bare user object. Decoding into both shapes at once covers either case.
type signUpResponse struct {
	providerSession
	providerUser
}

// providerError collects the error fields used across provider endpoints.
type providerError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e providerError) text() string {
	for _, v := range []string{e.ErrorDescription, e.Msg, e.Message, e.Error, e.ErrorCode} {
		if v != "" {
			return v
		}
	}
	return "identity provider rejected the request"
}

// toUser maps a provider user. Provider-controlled app metadata wins over
// user metadata for authorization fields.
func toUser(u *providerUser, now time.Time) *models.User {
	user := models.NewUser(u.ID, u.CreatedAt)
	if email, err := models.NewEmail(u.Email); err == nil {
		user.Email = &email
	}
	if u.Phone != "" {
		raw := u.Phone
		if !strings.HasPrefix(raw, "+") {
			raw = "+" + raw
		}
		if phone, err := models.NewPhone(raw); err == nil {
			user.Phone = &phone
		}
	}
	if name, ok := u.UserMetadata["name"].(string); ok {
		user.Name = name
	}

	uc := models.NewUserContext(&models.Claims{AppMetadata: u.AppMetadata, UserMetadata: u.UserMetadata})
	user.Role = uc.Role
	user.RestaurantID = uc.RestaurantID
	user.Permissions = uc.Permissions
	user.IsAnonymous = u.IsAnonymous
	user.IsActive = u.BannedUntil == nil || !u.BannedUntil.After(now)
	user.UpdatedAt = u.UpdatedAt
	return user
}

func toSession(s *providerSession, userID string, now time.Time) (*models.AuthSession, error) {
	access, err := models.NewToken(s.AccessToken)
	if err != nil {
		return nil, err
	}
	session := &models.AuthSession{
		SessionID:   userID + ":" + now.UTC().Format(time.RFC3339Nano),
		UserID:      userID,
		AccessToken: access,
		ExpiresIn:   s.ExpiresIn,
		CreatedAt:   now,
	}
	switch {
	case s.ExpiresAt > 0:
		exp := time.Unix(s.ExpiresAt, 0).UTC()
		session.ExpiresAt = &exp
	case s.ExpiresIn > 0:
		exp := now.Add(time.Duration(s.ExpiresIn) * time.Second)
		session.ExpiresAt = &exp
	}
	if s.RefreshToken != "" {
		refresh, err := models.NewTypedToken(s.RefreshToken, models.TokenTypeRefresh, nil)
		if err == nil {
			session.RefreshToken = &refresh
		}
	}
	return session, nil
}
