package domain

import "time"

// RefreshToken is one issued refresh token. Rows are never deleted on
// rotation; the superseded token keeps its RevokedAt as an audit record.
type RefreshToken struct {
	ID        uint       `json:"-" gorm:"primaryKey"`
	Token     string     `json:"token" gorm:"uniqueIndex;not null"`
	UserID    UserID     `json:"user_id" gorm:"index;not null"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"index;not null"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// IsActive reports whether the token can still be redeemed: not revoked and
// not past its expiry at the given instant.
func (t *RefreshToken) IsActive(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
