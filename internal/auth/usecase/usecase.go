package usecase

import (
	authdomain "todolist-api/internal/auth/domain"
	authdto "todolist-api/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a new user account; the role defaults to "User"
	Register(req *authdto.RegisterRequest) error

	// Login verifies credentials and issues an access/refresh token pair
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// RefreshToken redeems a refresh token for a new pair, revoking the
	// presented token. Each refresh token can be redeemed at most once.
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)

	// ValidateAccessToken verifies a bearer token and resolves its user
	ValidateAccessToken(tokenString string) (*authdomain.User, error)
}
