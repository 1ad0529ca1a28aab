package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	CategoryName string `json:"categoryName" validate:"required,min=1,max=120"`
}

type UpdateCategoryRequest struct {
	CategoryName *string `json:"categoryName" validate:"omitempty,min=1,max=120"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CategoryResponse struct {
	CategoryID   string    `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CategoryRef is the trimmed category payload embedded under a menu —
// timestamps are deliberately excluded there.
type CategoryRef struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}
