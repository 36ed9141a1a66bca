package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/insighta-backoffice/internal/domain"
	"github.com/spec-kit/insighta-backoffice/internal/repository"
	apperrors "github.com/spec-kit/insighta-backoffice/pkg/util"
)

// AuditService appends immutable audit entries for mutating operations and
// serves the separate read path.
type AuditService struct {
	entries repository.AuditRepository
	logger  *zap.Logger
}

// NewAuditService constructs the service.
func NewAuditService(entries repository.AuditRepository, logger *zap.Logger) *AuditService {
	return &AuditService{entries: entries, logger: logger}
}

// Record appends one audit entry. The write is best-effort: a failure is
// logged with full context but never rolls back the already-committed
// business mutation.
func (s *AuditService) Record(ctx context.Context, action domain.AuditAction, entityType domain.EntityType, entityID string, actor domain.Actor, detail map[string]any) {
	entry := &domain.AuditEntry{
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		ActorUserID: actor.UserID,
		ActorIP:     actor.IP,
		Detail:      detail,
	}
	if err := s.entries.Insert(ctx, entry); err != nil {
		s.logger.Warn("audit write failed",
			zap.String("action", string(action)),
			zap.String("entity_type", string(entityType)),
			zap.String("entity_id", entityID),
			zap.String("actor_user_id", actor.UserID),
			zap.Error(err),
		)
	}
}

// ListByEntity returns the audit trail for one entity, newest first.
func (s *AuditService) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit, offset int) ([]domain.AuditEntry, error) {
	entries, err := s.entries.ListByEntity(ctx, entityType, entityID, limit, offset)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return entries, nil
}

// ListRecent returns the most recent audit entries across all entities.
func (s *AuditService) ListRecent(ctx context.Context, limit, offset int) ([]domain.AuditEntry, error) {
	entries, err := s.entries.ListRecent(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return entries, nil
}
