package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentLog records the cash handed over for an order (one per order).
// ChangeReturned = AmountPaid - order.Total.
type PaymentLog struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	AmountPaid     int64     `gorm:"not null"`
	ChangeReturned int64     `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Order *Order `gorm:"foreignKey:OrderID"`
}
