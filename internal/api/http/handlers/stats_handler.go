package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/insighta-backoffice/internal/service"
)

// StatsHandler exposes the admin dashboard aggregates.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Overview handles GET /admin/stats.
func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	stats, err := h.stats.Overview(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"tickets_by_status":   stats.TicketsByStatus,
		"tickets_by_category": stats.TicketsByCategory,
		"active_staff_count":  stats.ActiveStaffCount,
	}})
}
