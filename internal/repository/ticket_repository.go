package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/insighta-backoffice/internal/domain"
)

const ticketColumns = "id, subject, category_id, assignee_staff_id, status, created_at, updated_at"

// TicketFilter captures listing parameters for tickets.
type TicketFilter struct {
	Statuses   []domain.TicketStatus
	CategoryID *string
	AssigneeID *string
	Limit      int
	Offset     int
}

// TicketRepository encapsulates ticket persistence. UpdateStatus is the
// conditional-write primitive: the status change applies only if the row
// still holds the expected status.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	UpdateStatus(ctx context.Context, id string, expected, next domain.TicketStatus) (*domain.Ticket, error)
	UpdateAssignee(ctx context.Context, id string, assigneeID *string) (*domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates the repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (subject, category_id, assignee_staff_id, status)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.Subject,
		ticket.CategoryID,
		ticket.AssigneeID,
		ticket.Status,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := fmt.Sprintf("SELECT %s FROM tickets WHERE id=$1", ticketColumns)
	return scanTicketRow(r.pool.QueryRow(ctx, query, id))
}

// UpdateStatus performs the compare-and-swap write. pgx.ErrNoRows signals
// that the row no longer held the expected status (or was deleted) at the
// moment of the write.
func (r *ticketRepository) UpdateStatus(ctx context.Context, id string, expected, next domain.TicketStatus) (*domain.Ticket, error) {
	query := fmt.Sprintf(`
        UPDATE tickets SET status=$1, updated_at=NOW()
        WHERE id=$2 AND status=$3
        RETURNING %s`, ticketColumns)
	return scanTicketRow(r.pool.QueryRow(ctx, query, next, id, expected))
}

func (r *ticketRepository) UpdateAssignee(ctx context.Context, id string, assigneeID *string) (*domain.Ticket, error) {
	query := fmt.Sprintf(`
        UPDATE tickets SET assignee_staff_id=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING %s`, ticketColumns)
	return scanTicketRow(r.pool.QueryRow(ctx, query, assigneeID, id))
}

func (r *ticketRepository) List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	base := fmt.Sprintf("SELECT %s FROM tickets", ticketColumns)
	clauses := []string{"1=1"}
	args := []any{}

	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		clauses = append(clauses, fmt.Sprintf("category_id=$%d", len(args)))
	}
	if filter.AssigneeID != nil {
		args = append(args, *filter.AssigneeID)
		clauses = append(clauses, fmt.Sprintf("assignee_staff_id=$%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY updated_at DESC LIMIT %d OFFSET %d",
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.Subject,
			&ticket.CategoryID,
			&ticket.AssigneeID,
			&ticket.Status,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

func scanTicketRow(row pgx.Row) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := row.Scan(
		&ticket.ID,
		&ticket.Subject,
		&ticket.CategoryID,
		&ticket.AssigneeID,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}
