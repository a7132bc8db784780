// Package restaurant is the tenant directory: it resolves restaurants by id
// and by the short access code printed for guests.
package restaurant

import "strings"

// Restaurant is a tenant as seen by the authentication layer.
type Restaurant struct {
	ID             string
	Name           string
	Code           string
	LogoURL        *string
	PrimaryColor   *string
	SecondaryColor *string
	IsActive       bool
}

// NormalizeCode canonicalizes a guest-entered access code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
