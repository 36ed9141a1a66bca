package dto

import (
	"time"

	"github.com/spec-kit/insighta-backoffice/internal/domain"
)

// CategoryCreateRequest payload.
type CategoryCreateRequest struct {
	Name string `json:"name"`
}

// CategoryUpdateRequest payload; nil fields are left unchanged.
type CategoryUpdateRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

// CategoryResponse response.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCategoryResponse maps a domain category.
func NewCategoryResponse(category *domain.ComplaintCategory) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		IsActive:  category.IsActive,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}
