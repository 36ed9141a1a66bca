package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/insighta-backoffice/internal/api/dto"
	"github.com/spec-kit/insighta-backoffice/internal/domain"
	"github.com/spec-kit/insighta-backoffice/internal/service"
)

// AuditHandler exposes the read-only audit trail.
type AuditHandler struct {
	audit *service.AuditService
}

// NewAuditHandler constructs handler.
func NewAuditHandler(audit *service.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// List handles GET /admin/audit-logs. Optional entity_type + entity_id
// narrow the trail to one entity.
func (h *AuditHandler) List(c *fiber.Ctx) error {
	page := parseIntQuery(c, "page", 1)
	pageSize := parseIntQuery(c, "page_size", 50)
	offset := (page - 1) * pageSize

	var entries []domain.AuditEntry
	var err error
	entityType := c.Query("entity_type")
	entityID := c.Query("entity_id")
	if entityType != "" && entityID != "" {
		entries, err = h.audit.ListByEntity(c.Context(), domain.EntityType(entityType), entityID, pageSize, offset)
	} else {
		entries, err = h.audit.ListRecent(c.Context(), pageSize, offset)
	}
	if err != nil {
		return err
	}

	resp := make([]dto.AuditEntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, dto.NewAuditEntryResponse(&entries[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}
