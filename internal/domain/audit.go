package domain

import "time"

// AuditAction is the verb tag recorded for a mutating operation.
type AuditAction string

const (
	AuditCategoryCreate     AuditAction = "category.create"
	AuditCategoryUpdate     AuditAction = "category.update"
	AuditTicketCreate       AuditAction = "ticket.create"
	AuditTicketStatusUpdate AuditAction = "ticket.status_update"
	AuditTicketAssign       AuditAction = "ticket.assign"
	AuditStaffCreate        AuditAction = "staff.create"
	AuditPasswordChange     AuditAction = "auth.password_change"
)

// EntityType names the aggregate an audit entry refers to.
type EntityType string

const (
	EntityTicket   EntityType = "ticket"
	EntityCategory EntityType = "category"
	EntityStaff    EntityType = "staff"
)

// AuditEntry is an immutable record of a mutating action. Entries are
// append-only; nothing in this service updates or deletes them.
type AuditEntry struct {
	ID          string
	Action      AuditAction
	EntityType  EntityType
	EntityID    string
	ActorUserID string
	ActorIP     *string
	Detail      map[string]any
	CreatedAt   time.Time
}
