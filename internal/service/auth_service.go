package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/insighta-backoffice/internal/auth"
	"github.com/spec-kit/insighta-backoffice/internal/config"
	"github.com/spec-kit/insighta-backoffice/internal/domain"
	"github.com/spec-kit/insighta-backoffice/internal/repository"
	apperrors "github.com/spec-kit/insighta-backoffice/pkg/util"
)

// AuthService coordinates staff login, logout and password changes.
type AuthService struct {
	staff             repository.StaffRepository
	audit             *AuditService
	tokenMgr          *auth.TokenManager
	sessions          *auth.SessionStore
	bcryptCost        int
	minPasswordLength int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, staff repository.StaffRepository, audit *AuditService, sessions *auth.SessionStore) *AuthService {
	return &AuthService{
		staff:             staff,
		audit:             audit,
		tokenMgr:          auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL()),
		sessions:          sessions,
		bcryptCost:        cfg.BcryptCost,
		minPasswordLength: cfg.MinPasswordLength,
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login authenticates a staff account and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.StaffAccount, string, time.Time, error) {
	account, err := s.staff.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthenticated("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if !account.Active {
		return nil, "", time.Time{}, apperrors.NewUnauthenticated("account deactivated")
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthenticated("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(account.ID, account.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return account, token, exp, nil
}

// Logout revokes the session token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil {
		return nil
	}
	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := s.sessions.Revoke(ctx, claims.ID, expiresAt); err != nil {
		return apperrors.NewUnavailable("session store unreachable", err)
	}
	return nil
}

// ChangePassword replaces the caller's password after verifying the current
// one. Used by staff to retire their temporary credential.
func (s *AuthService) ChangePassword(ctx context.Context, actor domain.Actor, currentPassword, newPassword string) error {
	if len(newPassword) < s.minPasswordLength {
		return apperrors.NewValidation("new password too short", map[string]any{
			"min_length": s.minPasswordLength,
		})
	}
	account, err := s.staff.GetByID(ctx, actor.UserID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if err := auth.ComparePassword(account.PasswordHash, currentPassword); err != nil {
		return apperrors.NewValidation("current password incorrect", nil)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	account.PasswordHash = hash
	if err := s.staff.Update(ctx, account); err != nil {
		return apperrors.MapError(err)
	}

	s.audit.Record(ctx, domain.AuditPasswordChange, domain.EntityStaff, account.ID, actor, nil)
	return nil
}
