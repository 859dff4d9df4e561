package domain

import (
	"strconv"
	"time"
)

// Roles recognized by the authorization policy.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// UserID identifies a user. Task ownership and refresh-token ownership are
// stored and compared as this type, never as free-form strings.
type UserID uint

func (id UserID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseUserID parses the decimal string form carried in token claims.
func ParseUserID(s string) (UserID, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return UserID(n), nil
}

type User struct {
	ID           UserID    `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"` // Never return the hash in JSON
	Role         string    `json:"role" gorm:"not null;default:User"`
	CreatedAt    time.Time `json:"created_at"`
}
