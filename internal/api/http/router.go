package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/insighta-backoffice/internal/api/http/handlers"
	"github.com/spec-kit/insighta-backoffice/internal/auth"
	"github.com/spec-kit/insighta-backoffice/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Categories     *handlers.CategoriesHandler
	Tickets        *handlers.TicketsHandler
	Staff          *handlers.StaffHandler
	Stats          *handlers.StatsHandler
	Audit          *handlers.AuditHandler
	NLP            *handlers.NLPHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Everything mutating sits behind the
// access gate; category/staff management and the audit trail are admin-only.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)
	app.Post("/nlp/generate", cfg.NLP.Generate)

	authed := app.Group("", cfg.AuthMiddleware.Handle)
	authed.Post("/auth/logout", cfg.Auth.Logout)
	authed.Post("/auth/password/change", cfg.Auth.ChangePassword)

	tickets := authed.Group("/tickets", auth.RequireRole(domain.StaffRoleStaff, domain.StaffRoleAdmin))
	tickets.Get("/", cfg.Tickets.List)
	tickets.Post("/", cfg.Tickets.Create)
	tickets.Get("/:id", cfg.Tickets.Get)
	tickets.Patch("/:id/status", cfg.Tickets.UpdateStatus)
	tickets.Patch("/:id/assignee", cfg.Tickets.Assign)

	admin := authed.Group("/admin", auth.RequireAdmin())
	admin.Get("/categories", cfg.Categories.List)
	admin.Post("/categories", cfg.Categories.Create)
	admin.Patch("/categories/:id", cfg.Categories.Update)

	admin.Get("/staff", cfg.Staff.List)
	admin.Post("/staff", cfg.Staff.Create)
	admin.Get("/staff/:id", cfg.Staff.Get)

	admin.Get("/stats", cfg.Stats.Overview)
	admin.Get("/audit-logs", cfg.Audit.List)
}
