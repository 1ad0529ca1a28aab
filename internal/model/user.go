package model

import (
	"time"

	"github.com/google/uuid"
)

// User stores system users with role-based access.
// Role: "admin" | "superadmin"
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"not null"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	// RefreshToken is the opaque refresh token issued at last login.
	// Rotated on login, cleared on logout, compared verbatim on refresh.
	RefreshToken *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
