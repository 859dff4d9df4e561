package usecase

import (
	"errors"
	"time"

	authdomain "todolist-api/internal/auth/domain"
	authdto "todolist-api/internal/auth/dto"
	"todolist-api/internal/auth/repository"
	"todolist-api/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// minSigningKeyLen is the shortest HMAC key accepted for HS256 signing.
const minSigningKeyLen = 32

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.RefreshTokenRepository
	config    *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokenRepo repository.RefreshTokenRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		config:    cfg,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) error {
	existing, err := u.userRepo.FindByUsername(req.Username)
	if err != nil {
		return err
	}

	if existing != nil {
		return authdomain.ErrDuplicateUsername
	}

	role := req.Role
	if role == "" {
		role = authdomain.RoleUser
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &authdomain.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	return u.userRepo.Create(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, authdomain.ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, authdomain.ErrInvalidCredentials
	}

	accessToken, err := u.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken := u.newRefreshToken(user.ID)
	if err := u.tokenRepo.Save(refreshToken); err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
	}, nil
}

func (u *authUsecase) RefreshToken(refreshToken string) (*authdto.TokenResponse, error) {
	stored, err := u.tokenRepo.FindByToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if stored == nil || !stored.IsActive(time.Now()) {
		return nil, authdomain.ErrInvalidOrExpiredToken
	}

	user, err := u.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}

	accessToken, err := u.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	// Rotate-on-use: revoke the presented token and persist its replacement
	// atomically, so a token redeemed twice fails the second time.
	next := u.newRefreshToken(user.ID)
	if err := u.tokenRepo.Rotate(stored, next); err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: next.Token,
	}, nil
}

func (u *authUsecase) ValidateAccessToken(tokenString string) (*authdomain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(u.config.JWTIssuer),
		jwt.WithAudience(u.config.JWTAudience),
		jwt.WithExpirationRequired(),
	)

	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	uid, ok := claims["uid"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, err := authdomain.ParseUserID(uid)
	if err != nil {
		return nil, errors.New("invalid token claims")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}

	return user, nil
}

func (u *authUsecase) generateAccessToken(user *authdomain.User) (string, error) {
	if len(u.config.JWTSecret) < minSigningKeyLen {
		return "", authdomain.ErrBadSigningKey
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"role": user.Role,
		"uid":  user.ID.String(),
		"iss":  u.config.JWTIssuer,
		"aud":  u.config.JWTAudience,
		"iat":  now.Unix(),
		"exp":  now.Add(u.config.AccessTokenExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) newRefreshToken(userID authdomain.UserID) *authdomain.RefreshToken {
	now := time.Now()
	return &authdomain.RefreshToken{
		Token:     uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(u.config.RefreshTokenExpiry),
	}
}
