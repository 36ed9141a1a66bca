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
	apperrors "github.com/spec-kit/insighta-backoffice/pkg/util"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeStaffRepo, *fakeAuditRepo) {
	t.Helper()
	staff := newFakeStaffRepo()
	audit := newFakeAuditRepo()
	cfg := config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            4,
		MinPasswordLength:     10,
	}
	svc := NewAuthService(cfg, staff, NewAuditService(audit, zap.NewNop()), auth.NewSessionStore(nil))
	return svc, staff, audit
}

func seedStaffAccount(t *testing.T, repo *fakeStaffRepo, email, password string, active bool) *domain.StaffAccount {
	t.Helper()
	hash, err := auth.HashPassword(password, 4)
	require.NoError(t, err)
	account := &domain.StaffAccount{
		Email:        email,
		FirstName:    "Dana",
		PasswordHash: hash,
		Role:         domain.StaffRoleStaff,
		Active:       active,
	}
	require.NoError(t, repo.Create(context.Background(), account))
	return account
}

func TestLogin(t *testing.T) {
	svc, staff, _ := newAuthFixture(t)
	account := seedStaffAccount(t, staff, "agent@example.com", "hunter2hunter2", true)

	got, token, exp, err := svc.Login(context.Background(), "agent@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
	assert.NotEmpty(t, token)
	assert.False(t, exp.IsZero())

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.SubjectID)
	assert.Equal(t, domain.StaffRoleStaff, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestLogin_Denials(t *testing.T) {
	svc, staff, _ := newAuthFixture(t)
	seedStaffAccount(t, staff, "agent@example.com", "hunter2hunter2", true)
	seedStaffAccount(t, staff, "gone@example.com", "hunter2hunter2", false)
	ctx := context.Background()

	_, _, _, err := svc.Login(ctx, "agent@example.com", "wrong-password")
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthenticated))

	_, _, _, err = svc.Login(ctx, "nobody@example.com", "hunter2hunter2")
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthenticated))

	_, _, _, err = svc.Login(ctx, "gone@example.com", "hunter2hunter2")
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthenticated))
}

func TestChangePassword(t *testing.T) {
	svc, staff, audit := newAuthFixture(t)
	account := seedStaffAccount(t, staff, "agent@example.com", "hunter2hunter2", true)
	actor := domain.Actor{Identity: domain.Identity{UserID: account.ID, Role: domain.StaffRoleStaff}}
	ctx := context.Background()

	err := svc.ChangePassword(ctx, actor, "hunter2hunter2", "a-new-longer-password")
	require.NoError(t, err)
	assert.Equal(t, 1, audit.count())

	_, _, _, err = svc.Login(ctx, "agent@example.com", "hunter2hunter2")
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthenticated))
	_, _, _, err = svc.Login(ctx, "agent@example.com", "a-new-longer-password")
	assert.NoError(t, err)
}

func TestChangePassword_Validation(t *testing.T) {
	svc, staff, _ := newAuthFixture(t)
	account := seedStaffAccount(t, staff, "agent@example.com", "hunter2hunter2", true)
	actor := domain.Actor{Identity: domain.Identity{UserID: account.ID, Role: domain.StaffRoleStaff}}
	ctx := context.Background()

	err := svc.ChangePassword(ctx, actor, "hunter2hunter2", "short")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	err = svc.ChangePassword(ctx, actor, "wrong-current", "a-new-longer-password")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}
