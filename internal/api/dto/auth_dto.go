package dto

import (
	"time"

	"github.com/spec-kit/insighta-backoffice/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse wraps an issued token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PasswordChangeRequest payload for authenticated password changes.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// AuditEntryResponse response for the audit read path.
type AuditEntryResponse struct {
	ID          string             `json:"id"`
	Action      domain.AuditAction `json:"action"`
	EntityType  domain.EntityType  `json:"entity_type"`
	EntityID    string             `json:"entity_id"`
	ActorUserID string             `json:"actor_user_id"`
	ActorIP     *string            `json:"actor_ip"`
	Detail      map[string]any     `json:"detail,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// NewAuditEntryResponse maps a domain audit entry.
func NewAuditEntryResponse(entry *domain.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:          entry.ID,
		Action:      entry.Action,
		EntityType:  entry.EntityType,
		EntityID:    entry.EntityID,
		ActorUserID: entry.ActorUserID,
		ActorIP:     entry.ActorIP,
		Detail:      entry.Detail,
		CreatedAt:   entry.CreatedAt,
	}
}

// NLPGenerateRequest payload.
type NLPGenerateRequest struct {
	Prompt string `json:"prompt"`
}

// NLPGenerateResponse response.
type NLPGenerateResponse struct {
	Output string `json:"output"`
}
