package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateUserRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=120"`
	Username string `json:"username" validate:"required,min=3,max=60"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=admin superadmin"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=2,max=120"`
	Username *string `json:"username" validate:"omitempty,min=3,max=60"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role"     validate:"omitempty,oneof=admin superadmin"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UserResponse struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// UserRef is the trimmed user payload embedded under an order.
type UserRef struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
}
