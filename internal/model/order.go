package model

import (
	"time"

	"github.com/google/uuid"
)

// Order is the root sales record. Total is caller-supplied and is NOT
// reconciled against the sum of its lines' subtotals. Deleting an order
// cascades to its lines and payment log.
type Order struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Total         int64     `gorm:"not null"`
	PaymentMethod string    `gorm:"not null;default:'CASH'"`
	PaymentStatus string    `gorm:"type:varchar(10);not null;default:'unpaid'"`
	Notes         *string
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time

	User       *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Lines      []OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	PaymentLog *PaymentLog `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}
