package model

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies menus (e.g. Drinks, Snacks, Mains).
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Category) TableName() string { return "categories" }
