package dto

import (
	"time"

	"github.com/spec-kit/insighta-backoffice/internal/domain"
	apperrors "github.com/spec-kit/insighta-backoffice/pkg/util"
)

// TicketCreateRequest payload.
type TicketCreateRequest struct {
	Subject    string  `json:"subject"`
	CategoryID *string `json:"category_id"`
}

// TicketStatusUpdateRequest payload. ExpectedStatus enables optimistic
// concurrency: when present, the update only applies if the ticket still
// holds that status.
type TicketStatusUpdateRequest struct {
	Status         string  `json:"status"`
	ExpectedStatus *string `json:"expected_status"`
}

// Validate converts the raw payload into typed statuses before any store
// access happens.
func (r TicketStatusUpdateRequest) Validate() (domain.TicketStatus, *domain.TicketStatus, error) {
	requested := domain.TicketStatus(r.Status)
	if !domain.IsValidTicketStatus(requested) {
		return "", nil, apperrors.NewValidation("unknown ticket status", map[string]any{"status": r.Status})
	}
	var expected *domain.TicketStatus
	if r.ExpectedStatus != nil {
		candidate := domain.TicketStatus(*r.ExpectedStatus)
		if !domain.IsValidTicketStatus(candidate) {
			return "", nil, apperrors.NewValidation("unknown expected status", map[string]any{"expected_status": *r.ExpectedStatus})
		}
		expected = &candidate
	}
	return requested, expected, nil
}

// TicketAssignRequest payload; a nil assignee clears the assignment.
type TicketAssignRequest struct {
	AssigneeStaffID *string `json:"assignee_staff_id"`
}

// TicketResponse response.
type TicketResponse struct {
	ID         string              `json:"id"`
	Subject    string              `json:"subject"`
	CategoryID *string             `json:"category_id"`
	AssigneeID *string             `json:"assignee_staff_id"`
	Status     domain.TicketStatus `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// NewTicketResponse maps a domain ticket.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:         ticket.ID,
		Subject:    ticket.Subject,
		CategoryID: ticket.CategoryID,
		AssigneeID: ticket.AssigneeID,
		Status:     ticket.Status,
		CreatedAt:  ticket.CreatedAt,
		UpdatedAt:  ticket.UpdatedAt,
	}
}
