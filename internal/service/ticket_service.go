package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/insighta-backoffice/internal/domain"
	"github.com/spec-kit/insighta-backoffice/internal/events"
	"github.com/spec-kit/insighta-backoffice/internal/repository"
	apperrors "github.com/spec-kit/insighta-backoffice/pkg/util"
)

// TicketService is the status engine governing ticket transitions.
type TicketService struct {
	tickets     repository.TicketRepository
	categories  repository.CategoryRepository
	staff       repository.StaffRepository
	audit       *AuditService
	transitions domain.TransitionTable
	dispatcher  events.Dispatcher
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo   repository.TicketRepository
	CategoryRepo repository.CategoryRepository
	StaffRepo    repository.StaffRepository
	Audit        *AuditService
	Transitions  domain.TransitionTable
	Dispatcher   events.Dispatcher
}

// TicketCreateInput describes ticket intake payload.
type TicketCreateInput struct {
	Subject    string
	CategoryID *string
}

// TicketListInput describes listing filters.
type TicketListInput struct {
	Statuses   []domain.TicketStatus
	CategoryID *string
	AssigneeID *string
	Limit      int
	Offset     int
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:     deps.TicketRepo,
		categories:  deps.CategoryRepo,
		staff:       deps.StaffRepo,
		audit:       deps.Audit,
		transitions: deps.Transitions,
		dispatcher:  deps.Dispatcher,
	}
}

// UpdateStatus moves a ticket to the requested status.
//
// When the caller supplies expected, a mismatch against the stored status is
// a Conflict: another actor changed the ticket since the caller's last read.
// The write itself is a conditional update keyed on the status observed
// here, so a race lost between the read and the write also surfaces as a
// Conflict rather than a lost update. Without expected the update is
// best-effort from whatever status the fetch observed.
func (s *TicketService) UpdateStatus(ctx context.Context, actor domain.Actor, ticketID string, requested domain.TicketStatus, expected *domain.TicketStatus) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}

	if expected != nil && *expected != ticket.Status {
		return nil, statusConflict(*expected, ticket.Status)
	}

	current := ticket.Status
	if !s.transitions.Allows(current, requested) {
		return nil, apperrors.NewIllegalTransition(
			fmt.Sprintf("transition from %s to %s is not permitted", current, requested),
			map[string]any{"current_status": current, "requested_status": requested},
		)
	}

	updated, err := s.tickets.UpdateStatus(ctx, ticketID, current, requested)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The conditional write lost a race: re-read so the conflict
			// names the actual status the winner left behind.
			if fresh, freshErr := s.tickets.GetByID(ctx, ticketID); freshErr == nil {
				return nil, statusConflict(current, fresh.Status)
			}
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}

	s.audit.Record(ctx, domain.AuditTicketStatusUpdate, domain.EntityTicket, updated.ID, actor, map[string]any{
		"old_status": current,
		"new_status": requested,
	})
	s.publishEvent(ctx, events.Event{
		Type:        events.EventTicketStatusChanged,
		EntityID:    updated.ID,
		ActorUserID: actor.UserID,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: current,
			NewStatus: requested,
		},
	})
	return updated, nil
}

// CreateTicket registers an inbound complaint in status New.
func (s *TicketService) CreateTicket(ctx context.Context, actor domain.Actor, input TicketCreateInput) (*domain.Ticket, error) {
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		return nil, apperrors.NewValidation("subject is required", nil)
	}
	if input.CategoryID != nil {
		category, err := s.categories.GetByID(ctx, *input.CategoryID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("category", map[string]any{"category_id": *input.CategoryID})
			}
			return nil, apperrors.MapError(err)
		}
		if !category.IsActive {
			return nil, apperrors.NewConflict("category is inactive", map[string]any{"category_id": category.ID})
		}
	}

	ticket := &domain.Ticket{
		Subject:    subject,
		CategoryID: input.CategoryID,
		Status:     domain.TicketStatusNew,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.audit.Record(ctx, domain.AuditTicketCreate, domain.EntityTicket, ticket.ID, actor, map[string]any{
		"subject": ticket.Subject,
	})
	s.publishEvent(ctx, events.Event{
		Type:        events.EventTicketCreated,
		EntityID:    ticket.ID,
		ActorUserID: actor.UserID,
	})
	return ticket, nil
}

// AssignTicket sets or clears the assignee.
func (s *TicketService) AssignTicket(ctx context.Context, actor domain.Actor, ticketID string, assigneeID *string) (*domain.Ticket, error) {
	if _, err := s.tickets.GetByID(ctx, ticketID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}
	if assigneeID != nil {
		assignee, err := s.staff.GetByID(ctx, *assigneeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("staff account", map[string]any{"staff_id": *assigneeID})
			}
			return nil, apperrors.MapError(err)
		}
		if !assignee.Active {
			return nil, apperrors.NewConflict("assignee is deactivated", map[string]any{"staff_id": assignee.ID})
		}
	}

	updated, err := s.tickets.UpdateAssignee(ctx, ticketID, assigneeID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.audit.Record(ctx, domain.AuditTicketAssign, domain.EntityTicket, updated.ID, actor, map[string]any{
		"assignee_staff_id": assigneeID,
	})
	s.publishEvent(ctx, events.Event{
		Type:        events.EventTicketAssigned,
		EntityID:    updated.ID,
		ActorUserID: actor.UserID,
		Payload:     events.TicketAssignedPayload{AssigneeStaffID: assigneeID},
	})
	return updated, nil
}

// GetTicket fetches a ticket by id.
func (s *TicketService) GetTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

// ListTickets returns tickets matching the filter.
func (s *TicketService) ListTickets(ctx context.Context, input TicketListInput) ([]domain.Ticket, error) {
	tickets, err := s.tickets.List(ctx, repository.TicketFilter{
		Statuses:   input.Statuses,
		CategoryID: input.CategoryID,
		AssigneeID: input.AssigneeID,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

func statusConflict(expected, actual domain.TicketStatus) error {
	return apperrors.NewConflict(
		fmt.Sprintf("ticket status changed: expected %s but found %s", expected, actual),
		map[string]any{"expected_status": expected, "actual_status": actual},
	)
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
