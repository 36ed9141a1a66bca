package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/insighta-backoffice/internal/domain"
	"github.com/spec-kit/insighta-backoffice/internal/repository"
)

// In-memory repository fakes. The ticket fake reproduces the store's
// conditional-write semantics under a mutex so races resolve the same way
// they do against the real database.

type fakeTicketRepo struct {
	mu      sync.Mutex
	tickets map[string]*domain.Ticket
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[string]*domain.Ticket)}
}

func (r *fakeTicketRepo) seed(ticket *domain.Ticket) *domain.Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ticket.ID == "" {
		ticket.ID = uuid.NewString()
	}
	now := time.Now()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now
	r.tickets[ticket.ID] = ticket
	return ticket
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	r.seed(ticket)
	return nil
}

func (r *fakeTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *ticket
	return &copied, nil
}

func (r *fakeTicketRepo) List(_ context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Ticket
	for _, ticket := range r.tickets {
		if len(filter.Statuses) > 0 {
			matched := false
			for _, status := range filter.Statuses {
				if ticket.Status == status {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		result = append(result, *ticket)
	}
	return result, nil
}

func (r *fakeTicketRepo) UpdateStatus(_ context.Context, id string, expected, next domain.TicketStatus) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok || ticket.Status != expected {
		return nil, pgx.ErrNoRows
	}
	ticket.Status = next
	ticket.UpdatedAt = time.Now()
	copied := *ticket
	return &copied, nil
}

func (r *fakeTicketRepo) UpdateAssignee(_ context.Context, id string, assigneeID *string) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	ticket.AssigneeID = assigneeID
	ticket.UpdatedAt = time.Now()
	copied := *ticket
	return &copied, nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*domain.ComplaintCategory
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*domain.ComplaintCategory)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *domain.ComplaintCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	category.ID = uuid.NewString()
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now
	stored := *category
	r.categories[category.ID] = &stored
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *domain.ComplaintCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[category.ID]; !ok {
		return pgx.ErrNoRows
	}
	category.UpdatedAt = time.Now()
	stored := *category
	r.categories[category.ID] = &stored
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*domain.ComplaintCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	category, ok := r.categories[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *category
	return &copied, nil
}

func (r *fakeCategoryRepo) FindByName(_ context.Context, name string, excludeID string) (*domain.ComplaintCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, category := range r.categories {
		if excludeID != "" && category.ID == excludeID {
			continue
		}
		if strings.EqualFold(category.Name, name) {
			copied := *category
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]domain.ComplaintCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.ComplaintCategory
	for _, category := range r.categories {
		result = append(result, *category)
	}
	return result, nil
}

type fakeStaffRepo struct {
	mu       sync.Mutex
	accounts map[string]*domain.StaffAccount
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{accounts: make(map[string]*domain.StaffAccount)}
}

func (r *fakeStaffRepo) Create(_ context.Context, staff *domain.StaffAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	staff.ID = uuid.NewString()
	now := time.Now()
	staff.CreatedAt = now
	staff.UpdatedAt = now
	stored := *staff
	r.accounts[staff.ID] = &stored
	return nil
}

func (r *fakeStaffRepo) Update(_ context.Context, staff *domain.StaffAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[staff.ID]; !ok {
		return pgx.ErrNoRows
	}
	staff.UpdatedAt = time.Now()
	stored := *staff
	r.accounts[staff.ID] = &stored
	return nil
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id string) (*domain.StaffAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	staff, ok := r.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *staff
	return &copied, nil
}

func (r *fakeStaffRepo) GetByEmail(_ context.Context, email string) (*domain.StaffAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, staff := range r.accounts {
		if strings.EqualFold(staff.Email, email) {
			copied := *staff
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeStaffRepo) List(_ context.Context, _ repository.StaffFilter) ([]domain.StaffAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.StaffAccount
	for _, staff := range r.accounts {
		result = append(result, *staff)
	}
	return result, nil
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
	failing bool
}

func newFakeAuditRepo() *fakeAuditRepo {
	return &fakeAuditRepo{}
}

func (r *fakeAuditRepo) Insert(_ context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return pgx.ErrTxClosed
	}
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeAuditRepo) ListByEntity(_ context.Context, entityType domain.EntityType, entityID string, _, _ int) ([]domain.AuditEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.AuditEntry
	for _, entry := range r.entries {
		if entry.EntityType == entityType && entry.EntityID == entityID {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (r *fakeAuditRepo) ListRecent(_ context.Context, _, _ int) ([]domain.AuditEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.AuditEntry{}, r.entries...), nil
}

func (r *fakeAuditRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *fakeAuditRepo) last() *domain.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return nil
	}
	entry := r.entries[len(r.entries)-1]
	return &entry
}

func testActor() domain.Actor {
	ip := "10.0.0.7"
	return domain.Actor{
		Identity: domain.Identity{
			UserID: "actor-1",
			Email:  "admin@example.com",
			Role:   domain.StaffRoleAdmin,
		},
		IP: &ip,
	}
}
