package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/insighta-backoffice/internal/api/dto"
	"github.com/spec-kit/insighta-backoffice/internal/service"
	apperrors "github.com/spec-kit/insighta-backoffice/pkg/util"
)

// CategoriesHandler exposes complaint-category management endpoints.
type CategoriesHandler struct {
	categories *service.CategoryService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(categories *service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{categories: categories}
}

// List handles GET /admin/categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.categories.ListCategories(c.Context())
	if err != nil {
		return err
	}
	resp := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, dto.NewCategoryResponse(&categories[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Create handles POST /admin/categories.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFromRequest(c)
	if err != nil {
		return err
	}
	var req dto.CategoryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid payload", nil)
	}

	category, err := h.categories.CreateCategory(c.Context(), actor, req.Name)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCategoryResponse(category)})
}

// Update handles PATCH /admin/categories/:id.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	actor, err := actorFromRequest(c)
	if err != nil {
		return err
	}
	var req dto.CategoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid payload", nil)
	}
	if req.Name == nil && req.IsActive == nil {
		return apperrors.NewValidation("nothing to update", nil)
	}

	category, err := h.categories.UpdateCategory(c.Context(), actor, c.Params("id"), service.CategoryPatch{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCategoryResponse(category)})
}
