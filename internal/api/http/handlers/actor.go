package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/insighta-backoffice/internal/auth"
	"github.com/spec-kit/insighta-backoffice/internal/domain"
	apperrors "github.com/spec-kit/insighta-backoffice/pkg/util"
)

// actorFromRequest builds the explicit actor value threaded into every
// manager operation: the identity resolved by the access gate plus the
// originating network address.
func actorFromRequest(c *fiber.Ctx) (domain.Actor, error) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return domain.Actor{}, apperrors.NewUnauthenticated("authentication required")
	}
	actor := domain.Actor{Identity: *identity}
	if ip := c.IP(); ip != "" {
		actor.IP = &ip
	}
	return actor, nil
}
