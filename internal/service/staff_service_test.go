package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/insighta-backoffice/internal/auth"
	"github.com/spec-kit/insighta-backoffice/internal/config"
	"github.com/spec-kit/insighta-backoffice/internal/domain"
	"github.com/spec-kit/insighta-backoffice/internal/repository"
	apperrors "github.com/spec-kit/insighta-backoffice/pkg/util"
)

func newStaffFixture(t *testing.T) (*StaffService, *fakeStaffRepo, *fakeAuditRepo) {
	t.Helper()
	staff := newFakeStaffRepo()
	audit := newFakeAuditRepo()
	cfg := config.AuthConfig{BcryptCost: 4, MinPasswordLength: 10}
	svc := NewStaffService(cfg, staff, NewAuditService(audit, zap.NewNop()), nil)
	return svc, staff, audit
}

func TestCreateStaffAccount_GeneratedPassword(t *testing.T) {
	svc, _, audit := newStaffFixture(t)

	provisioned, err := svc.CreateStaffAccount(context.Background(), testActor(), StaffCreateInput{
		Email:     "Agent@Example.com",
		FirstName: "Dana",
	})
	require.NoError(t, err)

	account := provisioned.Account
	assert.Equal(t, "agent@example.com", account.Email)
	assert.Equal(t, domain.StaffRoleStaff, account.Role)
	assert.True(t, account.Active)

	require.NotEmpty(t, provisioned.TemporaryPassword)
	assert.GreaterOrEqual(t, len(provisioned.TemporaryPassword), 10)
	assert.NotEqual(t, provisioned.TemporaryPassword, account.PasswordHash)
	assert.NoError(t, auth.ComparePassword(account.PasswordHash, provisioned.TemporaryPassword))

	require.Equal(t, 1, audit.count())
	entry := audit.last()
	assert.Equal(t, domain.AuditStaffCreate, entry.Action)
	assert.Equal(t, account.ID, entry.EntityID)
	assert.NotContains(t, entry.Detail, "temporary_password")
}

func TestCreateStaffAccount_GeneratedPasswordsDiffer(t *testing.T) {
	svc, _, _ := newStaffFixture(t)
	ctx := context.Background()

	first, err := svc.CreateStaffAccount(ctx, testActor(), StaffCreateInput{Email: "a@example.com", FirstName: "A"})
	require.NoError(t, err)
	second, err := svc.CreateStaffAccount(ctx, testActor(), StaffCreateInput{Email: "b@example.com", FirstName: "B"})
	require.NoError(t, err)

	assert.NotEqual(t, first.TemporaryPassword, second.TemporaryPassword)
}

func TestCreateStaffAccount_DuplicateEmail(t *testing.T) {
	svc, _, audit := newStaffFixture(t)
	ctx := context.Background()

	_, err := svc.CreateStaffAccount(ctx, testActor(), StaffCreateInput{Email: "agent@example.com", FirstName: "Dana"})
	require.NoError(t, err)

	_, err = svc.CreateStaffAccount(ctx, testActor(), StaffCreateInput{Email: "AGENT@example.com", FirstName: "Impostor"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	assert.Equal(t, 1, audit.count())
}

func TestCreateStaffAccount_Validation(t *testing.T) {
	svc, _, _ := newStaffFixture(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input StaffCreateInput
	}{
		{"missing email", StaffCreateInput{FirstName: "Dana"}},
		{"malformed email", StaffCreateInput{Email: "not-an-address", FirstName: "Dana"}},
		{"missing first name", StaffCreateInput{Email: "a@example.com"}},
		{"weak provided password", StaffCreateInput{Email: "a@example.com", FirstName: "Dana", TemporaryPassword: "short"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateStaffAccount(ctx, testActor(), tc.input)
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		})
	}
}

func TestCreateStaffAccount_ProvidedPassword(t *testing.T) {
	svc, _, _ := newStaffFixture(t)

	provisioned, err := svc.CreateStaffAccount(context.Background(), testActor(), StaffCreateInput{
		Email:             "agent@example.com",
		FirstName:         "Dana",
		TemporaryPassword: "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "correct-horse-battery", provisioned.TemporaryPassword)
	assert.NoError(t, auth.ComparePassword(provisioned.Account.PasswordHash, "correct-horse-battery"))
}

func TestEnsureAdminAccount(t *testing.T) {
	svc, staff, audit := newStaffFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdminAccount(ctx, "Root@Example.com", "bootstrap-password"))

	account, err := staff.GetByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.StaffRoleAdmin, account.Role)
	assert.True(t, account.Active)
	assert.NoError(t, auth.ComparePassword(account.PasswordHash, "bootstrap-password"))

	// Second run is a no-op.
	require.NoError(t, svc.EnsureAdminAccount(ctx, "root@example.com", "bootstrap-password"))
	accounts, err := staff.List(ctx, repository.StaffFilter{})
	require.NoError(t, err)
	assert.Len(t, accounts, 1)

	// Bootstrap is not an actor-driven mutation, so no audit entry.
	assert.Zero(t, audit.count())

	err = svc.EnsureAdminAccount(ctx, "root2@example.com", "short")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestGetStaffAccount_NotFound(t *testing.T) {
	svc, _, _ := newStaffFixture(t)

	_, err := svc.GetStaffAccount(context.Background(), "missing")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
