package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/insighta-backoffice/internal/api/dto"
	"github.com/spec-kit/insighta-backoffice/internal/domain"
	"github.com/spec-kit/insighta-backoffice/internal/repository"
	"github.com/spec-kit/insighta-backoffice/internal/service"
	apperrors "github.com/spec-kit/insighta-backoffice/pkg/util"
)

// StaffHandler exposes staff-account provisioning endpoints.
type StaffHandler struct {
	staff *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staff *service.StaffService) *StaffHandler {
	return &StaffHandler{staff: staff}
}

// Create handles POST /admin/staff. The response carries the temporary
// password exactly once; it is never returned again.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFromRequest(c)
	if err != nil {
		return err
	}
	var req dto.StaffCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid payload", nil)
	}

	provisioned, err := h.staff.CreateStaffAccount(c.Context(), actor, service.StaffCreateInput{
		Email:             req.Email,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		TemporaryPassword: req.TemporaryPassword,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.ProvisionedStaffResponse{
		Staff:             dto.NewStaffResponse(provisioned.Account),
		TemporaryPassword: provisioned.TemporaryPassword,
	}})
}

// List handles GET /admin/staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	filter := repository.StaffFilter{}
	if roleStr := c.Query("role"); roleStr != "" {
		role := domain.StaffRole(roleStr)
		filter.Role = &role
	}
	if active := c.Query("active"); active != "" {
		if val, err := strconv.ParseBool(active); err == nil {
			filter.Active = &val
		}
	}
	page := parseIntQuery(c, "page", 1)
	pageSize := parseIntQuery(c, "page_size", 50)
	filter.Offset = (page - 1) * pageSize
	filter.Limit = pageSize

	accounts, err := h.staff.ListStaffAccounts(c.Context(), filter)
	if err != nil {
		return err
	}
	resp := make([]dto.StaffResponse, 0, len(accounts))
	for i := range accounts {
		resp = append(resp, dto.NewStaffResponse(&accounts[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /admin/staff/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	account, err := h.staff.GetStaffAccount(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStaffResponse(account)})
}
