package audit

import "time"

// Event is emitted from the auth use cases to capture security relevant actions.
// Subject holds a masked identifier (email or phone), never the raw value.
type Event struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	UserID       string    `json:"user_id,omitempty"`
	Subject      string    `json:"subject,omitempty"`
	Action       string    `json:"action"`
	RestaurantID string    `json:"restaurant_id,omitempty"`
	SessionID    string    `json:"session_id,omitempty"`
	Decision     string    `json:"decision,omitempty"`
	Reason       string    `json:"reason,omitempty"`
	RequestID    string    `json:"request_id,omitempty"`
}

type AuditEvent string

const (
	EventSignedIn                AuditEvent = "signin_success"
	EventSignInFailed            AuditEvent = "signin_failed"
	EventSignedUp                AuditEvent = "signup_success"
	EventSignUpFailed            AuditEvent = "signup_failed"
	EventOTPSent                 AuditEvent = "otp_sent"
	EventOTPVerified             AuditEvent = "otp_verified"
	EventOTPFailed               AuditEvent = "otp_failed"
	EventAnonymousSessionCreated AuditEvent = "anonymous_session_created"
	EventAnonymousSessionEnded   AuditEvent = "anonymous_session_invalidated"
	EventAnonymousSessionExtend  AuditEvent = "anonymous_session_extended"
	EventSessionsCleaned         AuditEvent = "anonymous_sessions_cleaned"
	EventTokenRefreshed          AuditEvent = "token_refreshed"
	EventTokenRefreshFailed      AuditEvent = "token_refresh_failed"
	EventTokenBlacklisted        AuditEvent = "token_blacklisted"
	EventSignedOut               AuditEvent = "signout"
	EventRestaurantCodeAccess    AuditEvent = "restaurant_code_access"
	EventUserActivated           AuditEvent = "user_activated"
	EventUserDeactivated         AuditEvent = "user_deactivated"
	EventAuthFailed              AuditEvent = "auth_failed"
)
