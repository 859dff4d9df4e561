package repository

import (
	"time"

	authdomain "todolist-api/internal/auth/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user
	Create(user *authdomain.User) error

	// FindByUsername finds a user by username, (nil, nil) when absent
	FindByUsername(username string) (*authdomain.User, error)

	// FindByID finds a user by id, (nil, nil) when absent
	FindByID(id authdomain.UserID) (*authdomain.User, error)
}

// RefreshTokenRepository defines the interface for refresh-token data access
type RefreshTokenRepository interface {
	// Save persists a newly issued refresh token
	Save(token *authdomain.RefreshToken) error

	// FindByToken finds a refresh token by its opaque string, (nil, nil) when absent
	FindByToken(token string) (*authdomain.RefreshToken, error)

	// Rotate revokes old and persists next in a single transaction.
	// Returns ErrInvalidOrExpiredToken when old was already revoked,
	// so concurrent redemptions of the same token cannot both succeed.
	Rotate(old, next *authdomain.RefreshToken) error

	// DeleteExpiredBefore removes tokens whose expiry precedes cutoff,
	// returning the number of rows deleted.
	DeleteExpiredBefore(cutoff time.Time) (int64, error)
}
