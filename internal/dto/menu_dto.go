package dto

import (
	"mime/multipart"
	"time"

	"warungpos/internal/query"

	"github.com/google/uuid"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────
// Menu create/update bind from multipart forms (the image rides along as
// menuImage) but accept plain JSON bodies too when no image is involved.

type CreateMenuRequest struct {
	MenuName        string                `form:"menuName"        json:"menuName"        validate:"required,min=1,max=120"`
	MenuDescription *string               `form:"menuDescription" json:"menuDescription"`
	CategoryID      string                `form:"categoryId"      json:"categoryId"      validate:"required,uuid"`
	Price           *int64                `form:"price"           json:"price"           validate:"required,min=0"`
	Stock           *int                  `form:"stock"           json:"stock"           validate:"required,min=0"`
	MenuImage       *multipart.FileHeader `form:"menuImage"       json:"-"`
}

type UpdateMenuRequest struct {
	MenuName        *string               `form:"menuName"        json:"menuName"        validate:"omitempty,min=1,max=120"`
	MenuDescription *string               `form:"menuDescription" json:"menuDescription"`
	CategoryID      *string               `form:"categoryId"      json:"categoryId"      validate:"omitempty,uuid"`
	Price           *int64                `form:"price"           json:"price"           validate:"omitempty,min=0"`
	Stock           *int                  `form:"stock"           json:"stock"           validate:"omitempty,min=0"`
	MenuImage       *multipart.FileHeader `form:"menuImage"       json:"-"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// MenuListQuery carries the raw query string values exactly as sent.
// Normalization into MenuFilter happens in the service (permissive parsing —
// malformed values are dropped, never rejected).
type MenuListQuery struct {
	CategoryID   string `form:"categoryId"`
	CategoryName string `form:"categoryName"`
	MenuName     string `form:"menuName"`
	MinPrice     string `form:"minPrice"`
	MaxPrice     string `form:"maxPrice"`
	SearchQuery  string `form:"searchQuery"`
	Page         string `form:"page"`
	PageSize     string `form:"pageSize"`
	SortBy       string `form:"sortBy"`
	SortOrder    string `form:"sortOrder"`
	MostOrdered  string `form:"mostOrdered"`
}

// MenuFilter is the normalized predicate set executed by the repository.
type MenuFilter struct {
	CategoryID   *uuid.UUID
	CategoryName string
	MenuName     string
	Price        query.Range
	Search       string
	MostOrdered  bool
	Sort         query.Sort
	Page         query.Page
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MenuResponse struct {
	MenuID          string      `json:"menuId"`
	MenuName        string      `json:"menuName"`
	MenuDescription *string     `json:"menuDescription"`
	CategoryID      string      `json:"categoryId"`
	Price           int64       `json:"price"`
	Stock           int         `json:"stock"`
	MenuImageURL    *string     `json:"menuImageUrl"`
	OrderCount      *int64      `json:"orderCount,omitempty"` // most-ordered mode only
	Category        CategoryRef `json:"category"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// MenuRef is the trimmed menu payload embedded under an order line.
type MenuRef struct {
	MenuID          string      `json:"menuId"`
	MenuName        string      `json:"menuName"`
	MenuDescription *string     `json:"menuDescription"`
	Price           int64       `json:"price"`
	Category        CategoryRef `json:"category"`
}

// MenuPriceResponse is returned by the public price check endpoint.
type MenuPriceResponse struct {
	MenuName     string `json:"menuName"`
	Price        int64  `json:"price"`
	Stock        int    `json:"stock"`
	CategoryName string `json:"categoryName"`
}
