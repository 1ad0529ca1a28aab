package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateOrderLineRequest struct {
	OrderID  string  `json:"orderId"  validate:"required,uuid"`
	MenuID   string  `json:"menuId"   validate:"required,uuid"`
	Quantity *int    `json:"quantity" validate:"required,gt=0"`
	Price    *int64  `json:"price"    validate:"required,min=0"`
	Notes    *string `json:"notes"`
}

type UpdateOrderLineRequest struct {
	Quantity *int    `json:"quantity" validate:"omitempty,gt=0"`
	Price    *int64  `json:"price"    validate:"omitempty,min=0"`
	Notes    *string `json:"notes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderLineResponse struct {
	OrderLineID string    `json:"orderLineId"`
	OrderID     string    `json:"orderId"`
	Quantity    int       `json:"quantity"`
	Price       int64     `json:"price"`
	Subtotal    int64     `json:"subtotal"`
	Notes       *string   `json:"notes"`
	Menu        MenuRef   `json:"menu"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
