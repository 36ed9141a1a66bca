package events

import (
	"time"

	"github.com/spec-kit/insighta-backoffice/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketAssigned      EventType = "ticket_assigned"
	EventCategoryChanged     EventType = "category_changed"
	EventStaffCreated        EventType = "staff_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	EntityID    string      `json:"entity_id"`
	ActorUserID string      `json:"actor_user_id"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	AssigneeStaffID *string `json:"assignee_staff_id,omitempty"`
}

// CategoryChangedPayload payload.
type CategoryChangedPayload struct {
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// StaffCreatedPayload payload.
type StaffCreatedPayload struct {
	Email string           `json:"email"`
	Role  domain.StaffRole `json:"role"`
}
