package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

func (c *Client) SignInWithEmail(ctx context.Context, email models.Email, password string) (*models.AuthenticationResult, error) {
	var session providerSession
	err := c.do(ctx, call{
		operation: "sign_in_password",
		method:    http.MethodPost,
		path:      "/token",
		query:     url.Values{"grant_type": {"password"}},
		body:      map[string]string{"email": email.Value(), "password": password},
	}, &session)
	return c.sessionResult(ctx, &session, err)
}

func (c *Client) SignUpWithEmail(ctx context.Context, email models.Email, password string, name *string, role string, restaurantID *string) (*models.AuthenticationResult, error) {
	data := map[string]any{"role": role}
	if name != nil {
		data["name"] = *name
	}
	if restaurantID != nil {
		data["restaurant_id"] = *restaurantID
	}

	var resp signUpResponse
	err := c.do(ctx, call{
		operation: "sign_up",
		method:    http.MethodPost,
		path:      "/signup",
		body:      map[string]any{"email": email.Value(), "password": password, "data": data},
	}, &resp)
	if msg, ok := rejected(err); ok {
		return models.Failed(msg), nil
	}
	if err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	if resp.AccessToken == "" {
		// Confirmation pending: the body is the bare user.
		if resp.providerUser.ID == "" {
			return models.Failed("sign up returned no user"), nil
		}
		return &models.AuthenticationResult{
			Success:              true,
			User:                 toUser(&resp.providerUser, now),
			RequiresVerification: true,
		}, nil
	}
	return c.sessionResult(ctx, &resp.providerSession, nil)
}

// InitiatePhoneAuth reports false when the provider refuses to send a code.
func (c *Client) InitiatePhoneAuth(ctx context.Context, phone models.Phone) (bool, error) {
	err := c.do(ctx, call{
		operation: "send_otp",
		method:    http.MethodPost,
		path:      "/otp",
		body:      map[string]any{"phone": phone.Value(), "create_user": true},
	}, nil)
	if msg, ok := rejected(err); ok {
		c.logger.WarnContext(ctx, "otp dispatch refused", "reason", msg)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// VerifyPhoneOTP checks the code. The optional name is applied by the caller
// through UpdateUserMetadata.
func (c *Client) VerifyPhoneOTP(ctx context.Context, phone models.Phone, otp models.OTPCode, _ *string) (*models.AuthenticationResult, error) {
	var session providerSession
	err := c.do(ctx, call{
		operation: "verify_otp",
		method:    http.MethodPost,
		path:      "/verify",
		body:      map[string]string{"type": "sms", "phone": phone.Value(), "token": otp.Value()},
	}, &session)
	return c.sessionResult(ctx, &session, err)
}

func (c *Client) RefreshSession(ctx context.Context, refreshToken models.Token) (*models.AuthenticationResult, error) {
	var session providerSession
	err := c.do(ctx, call{
		operation: "refresh",
		method:    http.MethodPost,
		path:      "/token",
		query:     url.Values{"grant_type": {"refresh_token"}},
		body:      map[string]string{"refresh_token": refreshToken.Value()},
	}, &session)
	return c.sessionResult(ctx, &session, err)
}

// SignOut ends the provider sessions tied to the caller's bearer token, taken
// from the request context. Without one there is nothing to end.
func (c *Client) SignOut(ctx context.Context, userID string) (bool, error) {
	uc := requestcontext.UserContext(ctx)
	if uc == nil || uc.UserID != userID || uc.Token == "" {
		return true, nil
	}
	err := c.do(ctx, call{
		operation: "logout",
		method:    http.MethodPost,
		path:      "/logout",
		query:     url.Values{"scope": {"global"}},
		bearer:    uc.Token,
	}, nil)
	if _, ok := rejected(err); ok {
		// Token already invalid at the provider.
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *Client) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var u providerUser
	err := c.do(ctx, call{
		operation: "admin_get_user",
		method:    http.MethodGet,
		path:      "/admin/users/" + url.PathEscape(userID),
		admin:     true,
	}, &u)
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toUser(&u, requestcontext.Now(ctx)), nil
}

func (c *Client) GetUserByEmail(ctx context.Context, email models.Email) (*models.User, error) {
	if c.directory == nil {
		return nil, nil
	}
	return c.directory.FindByEmail(ctx, email.Value())
}

func (c *Client) GetUserByPhone(ctx context.Context, phone models.Phone) (*models.User, error) {
	if c.directory == nil {
		return nil, nil
	}
	return c.directory.FindByPhone(ctx, phone.Value())
}

// UpdateUserMetadata merges metadata into the user's self-managed metadata.
func (c *Client) UpdateUserMetadata(ctx context.Context, userID string, metadata map[string]any) (bool, error) {
	err := c.do(ctx, call{
		operation: "admin_update_user",
		method:    http.MethodPut,
		path:      "/admin/users/" + url.PathEscape(userID),
		body:      map[string]any{"user_metadata": metadata},
		admin:     true,
	}, nil)
	if notFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// sessionResult turns a grant response into an AuthenticationResult.
func (c *Client) sessionResult(ctx context.Context, session *providerSession, err error) (*models.AuthenticationResult, error) {
	if msg, ok := rejected(err); ok {
		return models.Failed(msg), nil
	}
	if err != nil {
		return nil, err
	}
	if session.AccessToken == "" || session.User == nil {
		return models.Failed("identity provider returned no session"), nil
	}
	now := requestcontext.Now(ctx)
	user := toUser(session.User, now)
	authSession, err := toSession(session, user.ID, now)
	if err != nil {
		return nil, fmt.Errorf("map provider session: %w", err)
	}
	return &models.AuthenticationResult{Success: true, User: user, Session: authSession}, nil
}
