package models

// UserContext is the per-request authorization view derived from token claims.
// Claims may be stale; display data should be re-read from the user record.
type UserContext struct {
	UserID       string
	Email        string
	Phone        string
	Role         string
	RestaurantID *string
	Permissions  map[string]bool
	IsAnonymous  bool
	// Token is the raw bearer credential the context was derived from, if any.
	Token string
}

// HasRole is true for an exact role match or for owners.
func (c *UserContext) HasRole(role string) bool {
	return hasRole(c.Role, role)
}

func (c *UserContext) HasAnyRole(roles ...string) bool {
	return hasAnyRole(c.Role, roles)
}

// HasPermission is unconditionally true for owners; otherwise unknown permissions are denied.
func (c *UserContext) HasPermission(permission string) bool {
	return hasPermission(c.Role, c.Permissions, permission)
}

// CanAccessRestaurant allows an unset target and an exact tenant match only.
func (c *UserContext) CanAccessRestaurant(restaurantID *string) bool {
	return canAccessRestaurant(c.RestaurantID, restaurantID)
}

// Claims is the subset of provider token claims the context is built from.
type Claims struct {
	Subject      string
	Email        string
	Phone        string
	IsAnonymous  bool
	AppMetadata  map[string]any
	UserMetadata map[string]any
}

// NewUserContext merges claims into a context. App metadata is written only
// by the provider's admin API and wins for role, restaurant_id and
// permissions. User metadata is editable by the user, so it can only ever
// yield a customer with a chosen restaurant; it never grants a staff role,
// a tenant for a staff role, or permissions.
func NewUserContext(c *Claims) *UserContext {
	role := appString(c.AppMetadata, "role")
	if role == "" {
		role = RoleCustomer
	}

	rid := appString(c.AppMetadata, "restaurant_id")
	if rid == "" && role == RoleCustomer {
		rid, _ = c.UserMetadata["restaurant_id"].(string)
	}
	var restaurantID *string
	if rid != "" {
		restaurantID = &rid
	}

	return &UserContext{
		UserID:       c.Subject,
		Email:        c.Email,
		Phone:        c.Phone,
		Role:         role,
		RestaurantID: restaurantID,
		Permissions:  permissionsClaim(c.AppMetadata),
		IsAnonymous:  c.IsAnonymous,
	}
}

// NewAnonymousUserContext builds the context for a guest session.
func NewAnonymousUserContext(session *AnonymousSession) *UserContext {
	restaurantID := session.RestaurantID
	return &UserContext{
		UserID:       session.SessionID,
		Role:         RoleAnonymous,
		RestaurantID: &restaurantID,
		Permissions:  map[string]bool{},
		IsAnonymous:  true,
	}
}

func appString(app map[string]any, key string) string {
	v, _ := app[key].(string)
	return v
}

func permissionsClaim(app map[string]any) map[string]bool {
	raw := app["permissions"]
	out := map[string]bool{}
	switch p := raw.(type) {
	case map[string]any:
		for k, v := range p {
			if b, ok := v.(bool); ok {
				out[k] = b
			}
		}
	case map[string]bool:
		for k, v := range p {
			out[k] = v
		}
	case []string:
		for _, name := range p {
			out[name] = true
		}
	case []any:
		for _, v := range p {
			if name, ok := v.(string); ok {
				out[name] = true
			}
		}
	}
	return out
}
