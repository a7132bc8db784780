package sentinel

import "errors"

// Sentinel dependency errors. Stores and provider adapters return these
// (optionally wrapped) so the service layer translates them into domain
// errors exactly once.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrExpired       = errors.New("expired")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnavailable   = errors.New("unavailable")
)
