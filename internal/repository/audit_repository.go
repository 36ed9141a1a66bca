package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/insighta-backoffice/internal/domain"
)

const auditColumns = "id, action, entity_type, entity_id, actor_user_id, actor_ip, detail, created_at"

// AuditRepository appends and reads audit entries. Entries are append-only;
// no update or delete statements exist here.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit, offset int) ([]domain.AuditEntry, error)
	ListRecent(ctx context.Context, limit, offset int) ([]domain.AuditEntry, error)
}

type auditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository instantiates the repository.
func NewAuditRepository(pool *pgxpool.Pool) AuditRepository {
	return &auditRepository{pool: pool}
}

func (r *auditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	const query = `
        INSERT INTO audit_log (action, entity_type, entity_id, actor_user_id, actor_ip, detail)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		entry.ActorUserID,
		entry.ActorIP,
		entry.Detail,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *auditRepository) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit, offset int) ([]domain.AuditEntry, error) {
	query := fmt.Sprintf(`
        SELECT %s FROM audit_log
        WHERE entity_type=$1 AND entity_id=$2
        ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		auditColumns, normalizeLimit(limit), normalizeOffset(offset))
	rows, err := r.pool.Query(ctx, query, entityType, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAuditEntries(rows)
}

func (r *auditRepository) ListRecent(ctx context.Context, limit, offset int) ([]domain.AuditEntry, error) {
	query := fmt.Sprintf(`
        SELECT %s FROM audit_log
        ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		auditColumns, normalizeLimit(limit), normalizeOffset(offset))
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAuditEntries(rows)
}

func scanAuditEntries(rows pgx.Rows) ([]domain.AuditEntry, error) {
	var result []domain.AuditEntry
	for rows.Next() {
		var entry domain.AuditEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&entry.EntityType,
			&entry.EntityID,
			&entry.ActorUserID,
			&entry.ActorIP,
			&entry.Detail,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
