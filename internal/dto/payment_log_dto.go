package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreatePaymentLogRequest struct {
	OrderID    string `json:"orderId"    validate:"required,uuid"`
	AmountPaid *int64 `json:"amountPaid" validate:"required,min=0"`
}

type UpdatePaymentLogRequest struct {
	AmountPaid *int64 `json:"amountPaid" validate:"omitempty,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PaymentLogResponse struct {
	PaymentLogID   string    `json:"paymentLogId"`
	OrderID        string    `json:"orderId"`
	AmountPaid     int64     `json:"amountPaid"`
	ChangeReturned int64     `json:"changeReturned"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
