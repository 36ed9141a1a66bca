package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/insighta-backoffice/internal/api/dto"
	"github.com/spec-kit/insighta-backoffice/internal/service"
	apperrors "github.com/spec-kit/insighta-backoffice/pkg/util"
)

// NLPHandler proxies prompts to the upstream language-analysis service.
type NLPHandler struct {
	nlp *service.NLPService
}

// NewNLPHandler constructs handler.
func NewNLPHandler(nlp *service.NLPService) *NLPHandler {
	return &NLPHandler{nlp: nlp}
}

// Generate handles POST /nlp/generate.
func (h *NLPHandler) Generate(c *fiber.Ctx) error {
	var req dto.NLPGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid payload", nil)
	}

	result, err := h.nlp.Generate(c.Context(), req.Prompt)
	if err != nil {
		return err
	}
	return c.JSON(dto.NLPGenerateResponse{Output: result.Output})
}
