package repository

import (
	"errors"
	"time"

	authdomain "todolist-api/internal/auth/domain"

	"gorm.io/gorm"
)

// refreshTokenRepository implements RefreshTokenRepository using GORM
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository creates a new instance of refreshTokenRepository
func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &refreshTokenRepository{
		db: db,
	}
}

func (r *refreshTokenRepository) Save(token *authdomain.RefreshToken) error {
	return r.db.Create(token).Error
}

func (r *refreshTokenRepository) FindByToken(token string) (*authdomain.RefreshToken, error) {
	var refreshToken authdomain.RefreshToken
	err := r.db.Where("token = ?", token).First(&refreshToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &refreshToken, nil
}

// Rotate marks the presented token revoked and inserts its replacement in one
// transaction. The conditional update doubles as an optimistic guard: if a
// concurrent redemption already revoked the row, zero rows match and the
// rotation fails instead of minting a second pair.
func (r *refreshTokenRepository) Rotate(old, next *authdomain.RefreshToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&authdomain.RefreshToken{}).
			Where("token = ? AND revoked_at IS NULL", old.Token).
			Update("revoked_at", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return authdomain.ErrInvalidOrExpiredToken
		}
		old.RevokedAt = &now
		return tx.Create(next).Error
	})
}

func (r *refreshTokenRepository) DeleteExpiredBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("expires_at < ?", cutoff).Delete(&authdomain.RefreshToken{})
	return res.RowsAffected, res.Error
}
