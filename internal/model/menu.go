package model

import (
	"time"

	"github.com/google/uuid"
)

// Menu is a sellable item. Price is stored in currency minor units.
type Menu struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description *string
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Price       int64     `gorm:"not null"`
	Stock       int       `gorm:"not null;default:0"`
	ImageURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}
