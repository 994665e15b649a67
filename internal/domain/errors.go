package domain

import "errors"

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")
	ErrNotConfigured      = errors.New("required configuration is missing")
)

// Entity errors
var (
	ErrNotFound = errors.New("not found")
)
