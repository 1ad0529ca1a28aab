package dto

import (
	"time"

	"warungpos/internal/query"

	"github.com/google/uuid"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateOrderRequest struct {
	UserID        string  `json:"userId"        validate:"required,uuid"`
	Total         *int64  `json:"total"         validate:"required,min=0"`
	PaymentMethod *string `json:"paymentMethod"`
	PaymentStatus *string `json:"paymentStatus" validate:"omitempty,oneof=paid unpaid"`
	Notes         *string `json:"notes"`
}

type UpdateOrderRequest struct {
	UserID        *string `json:"userId"        validate:"omitempty,uuid"`
	Total         *int64  `json:"total"         validate:"omitempty,min=0"`
	PaymentMethod *string `json:"paymentMethod"`
	PaymentStatus *string `json:"paymentStatus" validate:"omitempty,oneof=paid unpaid"`
	Notes         *string `json:"notes"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// OrderListQuery carries raw query string values; normalization into
// OrderFilter happens in the service.
type OrderListQuery struct {
	UserID        string `form:"userId"`
	Username      string `form:"username"`
	MinTotal      string `form:"minTotal"`
	MaxTotal      string `form:"maxTotal"`
	PaymentMethod string `form:"paymentMethod"`
	PaymentStatus string `form:"paymentStatus"`
	SearchQuery   string `form:"searchQuery"`
	DateRange     string `form:"dateRange"`
	FromDate      string `form:"fromDate"`
	ToDate        string `form:"toDate"`
	Page          string `form:"page"`
	PageSize      string `form:"pageSize"`
	SortBy        string `form:"sortBy"`
	SortOrder     string `form:"sortOrder"`
}

// OrderFilter is the normalized predicate set executed by the repository.
type OrderFilter struct {
	UserID        *uuid.UUID
	Username      string
	Total         query.Range
	PaymentMethod string
	PaymentStatus string
	Search        string
	Created       query.TimeRange
	Sort          query.Sort
	Page          query.Page
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderResponse struct {
	OrderID       string              `json:"orderId"`
	Total         int64               `json:"total"`
	PaymentMethod string              `json:"paymentMethod"`
	PaymentStatus string              `json:"paymentStatus"`
	Notes         *string             `json:"notes"`
	User          UserRef             `json:"user"`
	Lines         []OrderLineResponse `json:"lines"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}
