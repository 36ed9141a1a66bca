package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/insighta-backoffice/internal/api/dto"
	"github.com/spec-kit/insighta-backoffice/internal/domain"
	"github.com/spec-kit/insighta-backoffice/internal/service"
	apperrors "github.com/spec-kit/insighta-backoffice/pkg/util"
)

// TicketsHandler exposes ticket endpoints.
type TicketsHandler struct {
	tickets *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(tickets *service.TicketService) *TicketsHandler {
	return &TicketsHandler{tickets: tickets}
}

// List handles GET /tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	input := service.TicketListInput{}
	if statuses := c.Query("status"); statuses != "" {
		for _, raw := range strings.Split(statuses, ",") {
			status := domain.TicketStatus(strings.TrimSpace(raw))
			if !domain.IsValidTicketStatus(status) {
				return apperrors.NewValidation("unknown ticket status", map[string]any{"status": raw})
			}
			input.Statuses = append(input.Statuses, status)
		}
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		input.CategoryID = &categoryID
	}
	if assigneeID := c.Query("assignee_id"); assigneeID != "" {
		input.AssigneeID = &assigneeID
	}
	page := parseIntQuery(c, "page", 1)
	pageSize := parseIntQuery(c, "page_size", 20)
	input.Offset = (page - 1) * pageSize
	input.Limit = pageSize

	tickets, err := h.tickets.ListTickets(c.Context(), input)
	if err != nil {
		return err
	}
	resp := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		resp = append(resp, dto.NewTicketResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /tickets/:id.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	ticket, err := h.tickets.GetTicket(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// Create handles POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFromRequest(c)
	if err != nil {
		return err
	}
	var req dto.TicketCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid payload", nil)
	}

	ticket, err := h.tickets.CreateTicket(c.Context(), actor, service.TicketCreateInput{
		Subject:    req.Subject,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// UpdateStatus handles PATCH /tickets/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	actor, err := actorFromRequest(c)
	if err != nil {
		return err
	}
	var req dto.TicketStatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid payload", nil)
	}
	requested, expected, err := req.Validate()
	if err != nil {
		return err
	}

	ticket, err := h.tickets.UpdateStatus(c.Context(), actor, c.Params("id"), requested, expected)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// Assign handles PATCH /tickets/:id/assignee.
func (h *TicketsHandler) Assign(c *fiber.Ctx) error {
	actor, err := actorFromRequest(c)
	if err != nil {
		return err
	}
	var req dto.TicketAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid payload", nil)
	}

	ticket, err := h.tickets.AssignTicket(c.Context(), actor, c.Params("id"), req.AssigneeStaffID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

func parseIntQuery(c *fiber.Ctx, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}
