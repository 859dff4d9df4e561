package domain

import "errors"

var (
	ErrDuplicateUsername     = errors.New("username already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired refresh token")
	ErrUserNotFound          = errors.New("user not found")

	// ErrBadSigningKey indicates a deployment problem, not a request problem.
	ErrBadSigningKey = errors.New("jwt signing key must be at least 32 bytes")
)
