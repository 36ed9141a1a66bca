package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/insighta-backoffice/internal/domain"
)

// CategoryTicketCount pairs a category with its ticket total.
type CategoryTicketCount struct {
	CategoryID   string
	CategoryName string
	Count        int64
}

// StatsRepository runs the aggregate reads backing the admin dashboard.
type StatsRepository interface {
	CountTicketsByStatus(ctx context.Context) (map[domain.TicketStatus]int64, error)
	CountTicketsByCategory(ctx context.Context) ([]CategoryTicketCount, error)
	CountStaff(ctx context.Context) (int64, error)
}

type statsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository instantiates the repository.
func NewStatsRepository(pool *pgxpool.Pool) StatsRepository {
	return &statsRepository{pool: pool}
}

func (r *statsRepository) CountTicketsByStatus(ctx context.Context) (map[domain.TicketStatus]int64, error) {
	const query = `SELECT status, COUNT(*) FROM tickets GROUP BY status`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[domain.TicketStatus]int64)
	for rows.Next() {
		var status domain.TicketStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		result[status] = count
	}
	return result, rows.Err()
}

func (r *statsRepository) CountTicketsByCategory(ctx context.Context) ([]CategoryTicketCount, error) {
	const query = `
        SELECT c.id, c.name, COUNT(t.id)
        FROM complaint_categories c
        LEFT JOIN tickets t ON t.category_id = c.id
        GROUP BY c.id, c.name
        ORDER BY c.name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []CategoryTicketCount
	for rows.Next() {
		var entry CategoryTicketCount
		if err := rows.Scan(&entry.CategoryID, &entry.CategoryName, &entry.Count); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

func (r *statsRepository) CountStaff(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM staff_accounts WHERE active_flag = TRUE`
	var count int64
	err := r.pool.QueryRow(ctx, query).Scan(&count)
	return count, err
}
