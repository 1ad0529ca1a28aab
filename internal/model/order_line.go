package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderLine is one menu position on an order. Price snapshots the unit price
// at order time; Subtotal is always price * quantity and is recomputed on any
// update that touches either factor.
type OrderLine struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	MenuID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"not null"`
	Price     int64     `gorm:"not null"`
	Subtotal  int64     `gorm:"not null"`
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Order *Order `gorm:"foreignKey:OrderID"`
	Menu  *Menu  `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
}
