package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/insighta-backoffice/internal/api/dto"
	"github.com/spec-kit/insighta-backoffice/internal/auth"
	"github.com/spec-kit/insighta-backoffice/internal/service"
	apperrors "github.com/spec-kit/insighta-backoffice/pkg/util"
)

// AuthHandler exposes login/logout/password endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidation("email and password required", nil)
	}

	account, token, exp, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"staff": dto.NewStaffResponse(account),
		"auth":  dto.AuthResponse{Token: token, ExpiresAt: exp},
	}})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}
	if err := h.authService.Logout(c.Context(), claims); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "logged_out"}})
}

// ChangePassword handles POST /auth/password/change.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	actor, err := actorFromRequest(c)
	if err != nil {
		return err
	}
	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid payload", nil)
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.NewValidation("current and new password required", nil)
	}

	if err := h.authService.ChangePassword(c.Context(), actor, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "password_changed"}})
}
