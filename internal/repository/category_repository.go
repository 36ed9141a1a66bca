package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/insighta-backoffice/internal/domain"
)

// CategoryRepository handles persistence for complaint categories. The
// storage-level unique index on LOWER(name) is the authoritative uniqueness
// guard; FindByName is the user-friendly fast path.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.ComplaintCategory) error
	Update(ctx context.Context, category *domain.ComplaintCategory) error
	GetByID(ctx context.Context, id string) (*domain.ComplaintCategory, error)
	FindByName(ctx context.Context, name string, excludeID string) (*domain.ComplaintCategory, error)
	List(ctx context.Context) ([]domain.ComplaintCategory, error)
}

type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository instantiates the repository.
func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{pool: pool}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.ComplaintCategory) error {
	const query = `
        INSERT INTO complaint_categories (name, active_flag)
        VALUES ($1,$2)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		category.Name,
		category.IsActive,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.ComplaintCategory) error {
	const query = `
        UPDATE complaint_categories SET name=$1, active_flag=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING updated_at`
	return r.pool.QueryRow(ctx, query,
		category.Name,
		category.IsActive,
		category.ID,
	).Scan(&category.UpdatedAt)
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*domain.ComplaintCategory, error) {
	const query = `
        SELECT id, name, active_flag, created_at, updated_at
        FROM complaint_categories WHERE id=$1`
	return scanCategoryRow(r.pool.QueryRow(ctx, query, id))
}

// FindByName looks up a category by case-insensitive name, optionally
// excluding one id (used when renaming).
func (r *categoryRepository) FindByName(ctx context.Context, name string, excludeID string) (*domain.ComplaintCategory, error) {
	const query = `
        SELECT id, name, active_flag, created_at, updated_at
        FROM complaint_categories
        WHERE LOWER(name)=LOWER($1) AND ($2 = '' OR id::text <> $2)`
	return scanCategoryRow(r.pool.QueryRow(ctx, query, name, excludeID))
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.ComplaintCategory, error) {
	const query = `
        SELECT id, name, active_flag, created_at, updated_at
        FROM complaint_categories ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ComplaintCategory
	for rows.Next() {
		var category domain.ComplaintCategory
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.IsActive,
			&category.CreatedAt,
			&category.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, category)
	}
	return result, rows.Err()
}

func scanCategoryRow(row pgx.Row) (*domain.ComplaintCategory, error) {
	var category domain.ComplaintCategory
	if err := row.Scan(
		&category.ID,
		&category.Name,
		&category.IsActive,
		&category.CreatedAt,
		&category.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &category, nil
}
