package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/insighta-backoffice/internal/domain"
)

func TestAuditRecord(t *testing.T) {
	repo := newFakeAuditRepo()
	svc := NewAuditService(repo, zap.NewNop())
	actor := testActor()

	svc.Record(context.Background(), domain.AuditCategoryCreate, domain.EntityCategory, "cat-1", actor, map[string]any{"name": "Billing"})

	require.Equal(t, 1, repo.count())
	entry := repo.last()
	assert.Equal(t, domain.AuditCategoryCreate, entry.Action)
	assert.Equal(t, "cat-1", entry.EntityID)
	assert.Equal(t, actor.UserID, entry.ActorUserID)
	require.NotNil(t, entry.ActorIP)
	assert.Equal(t, *actor.IP, *entry.ActorIP)
}

func TestAuditRecord_FailureIsSwallowed(t *testing.T) {
	repo := newFakeAuditRepo()
	repo.failing = true
	svc := NewAuditService(repo, zap.NewNop())

	// Must not panic or propagate.
	svc.Record(context.Background(), domain.AuditStaffCreate, domain.EntityStaff, "staff-1", testActor(), nil)
	assert.Zero(t, repo.count())
}

func TestAuditListByEntity(t *testing.T) {
	repo := newFakeAuditRepo()
	svc := NewAuditService(repo, zap.NewNop())
	ctx := context.Background()

	svc.Record(ctx, domain.AuditTicketStatusUpdate, domain.EntityTicket, "t-1", testActor(), nil)
	svc.Record(ctx, domain.AuditTicketStatusUpdate, domain.EntityTicket, "t-2", testActor(), nil)
	svc.Record(ctx, domain.AuditTicketAssign, domain.EntityTicket, "t-1", testActor(), nil)

	entries, err := svc.ListByEntity(ctx, domain.EntityTicket, "t-1", 50, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	all, err := svc.ListRecent(ctx, 50, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
