package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/insighta-backoffice/internal/domain"
	"github.com/spec-kit/insighta-backoffice/internal/events"
	"github.com/spec-kit/insighta-backoffice/internal/repository"
	apperrors "github.com/spec-kit/insighta-backoffice/pkg/util"
)

const maxCategoryNameLength = 120

// CategoryService manages complaint categories. Name uniqueness is
// case-insensitive; inactive categories keep their name reserved.
type CategoryService struct {
	categories repository.CategoryRepository
	audit      *AuditService
	dispatcher events.Dispatcher
}

// CategoryPatch describes a partial update. Nil fields are left unchanged.
type CategoryPatch struct {
	Name     *string
	IsActive *bool
}

// NewCategoryService constructs the service.
func NewCategoryService(categories repository.CategoryRepository, audit *AuditService, dispatcher events.Dispatcher) *CategoryService {
	return &CategoryService{categories: categories, audit: audit, dispatcher: dispatcher}
}

// ListCategories returns all categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.ComplaintCategory, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return categories, nil
}

// CreateCategory adds a new active category. A case-insensitive duplicate is
// a Conflict and leaves no row and no audit entry behind.
func (s *CategoryService) CreateCategory(ctx context.Context, actor domain.Actor, name string) (*domain.ComplaintCategory, error) {
	name, err := validateCategoryName(name)
	if err != nil {
		return nil, err
	}
	if err := s.checkNameAvailable(ctx, name, ""); err != nil {
		return nil, err
	}

	category := &domain.ComplaintCategory{
		Name:     name,
		IsActive: true,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.audit.Record(ctx, domain.AuditCategoryCreate, domain.EntityCategory, category.ID, actor, map[string]any{
		"name": category.Name,
	})
	s.publishEvent(ctx, actor, category)
	return category, nil
}

// UpdateCategory applies a partial update to name and/or active flag.
func (s *CategoryService) UpdateCategory(ctx context.Context, actor domain.Actor, id string, patch CategoryPatch) (*domain.ComplaintCategory, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("category", map[string]any{"category_id": id})
		}
		return nil, apperrors.MapError(err)
	}

	changed := map[string]any{}
	if patch.Name != nil {
		name, err := validateCategoryName(*patch.Name)
		if err != nil {
			return nil, err
		}
		if !strings.EqualFold(name, category.Name) {
			if err := s.checkNameAvailable(ctx, name, category.ID); err != nil {
				return nil, err
			}
		}
		if name != category.Name {
			changed["name"] = map[string]any{"old": category.Name, "new": name}
			category.Name = name
		}
	}
	if patch.IsActive != nil && *patch.IsActive != category.IsActive {
		changed["is_active"] = map[string]any{"old": category.IsActive, "new": *patch.IsActive}
		category.IsActive = *patch.IsActive
	}

	if len(changed) == 0 {
		return category, nil
	}

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.audit.Record(ctx, domain.AuditCategoryUpdate, domain.EntityCategory, category.ID, actor, changed)
	s.publishEvent(ctx, actor, category)
	return category, nil
}

func (s *CategoryService) checkNameAvailable(ctx context.Context, name, excludeID string) error {
	existing, err := s.categories.FindByName(ctx, name, excludeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return apperrors.MapError(err)
	}
	return apperrors.NewConflict("category already exists", map[string]any{
		"name":        name,
		"existing_id": existing.ID,
	})
}

func validateCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.NewValidation("category name is required", nil)
	}
	if len(name) > maxCategoryNameLength {
		return "", apperrors.NewValidation("category name too long", map[string]any{
			"max_length": maxCategoryNameLength,
		})
	}
	return name, nil
}

func (s *CategoryService) publishEvent(ctx context.Context, actor domain.Actor, category *domain.ComplaintCategory) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:          uuid.NewString(),
		Type:        events.EventCategoryChanged,
		EntityID:    category.ID,
		ActorUserID: actor.UserID,
		Timestamp:   time.Now(),
		Payload: events.CategoryChangedPayload{
			Name:     category.Name,
			IsActive: category.IsActive,
		},
	})
}
