package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/insighta-backoffice/internal/domain"
	"github.com/spec-kit/insighta-backoffice/internal/repository"
	apperrors "github.com/spec-kit/insighta-backoffice/pkg/util"
)

const identityKey = "auth_identity"

// AuthMiddleware is the access gate: it resolves the caller's identity from
// the bearer token before any manager runs, or denies the request. It has no
// side effects of its own.
type AuthMiddleware struct {
	tokens   *TokenManager
	sessions *SessionStore
	staff    repository.StaffRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, sessions *SessionStore, staff repository.StaffRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, sessions: sessions, staff: staff}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthenticated("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthenticated("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthenticated("invalid token")
	}
	if m.sessions.IsRevoked(c.Context(), claims.ID) {
		return apperrors.NewUnauthenticated("session revoked")
	}

	staff, err := m.staff.GetByID(c.Context(), claims.SubjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthenticated("account not found")
		}
		return apperrors.MapError(err)
	}
	if !staff.Active {
		return apperrors.NewUnauthenticated("account deactivated")
	}

	c.Locals(identityKey, &domain.Identity{
		UserID: staff.ID,
		Email:  staff.Email,
		Role:   staff.Role,
	})
	c.Locals(identityKey+"_claims", claims)
	return c.Next()
}

// IdentityFromContext retrieves the resolved caller identity.
func IdentityFromContext(c *fiber.Ctx) (*domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*domain.Identity)
	return identity, ok
}

// ClaimsFromContext retrieves the parsed token claims (used by logout).
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(identityKey + "_claims")
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
