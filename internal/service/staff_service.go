package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/insighta-backoffice/internal/auth"
	"github.com/spec-kit/insighta-backoffice/internal/config"
	"github.com/spec-kit/insighta-backoffice/internal/domain"
	"github.com/spec-kit/insighta-backoffice/internal/events"
	"github.com/spec-kit/insighta-backoffice/internal/repository"
	apperrors "github.com/spec-kit/insighta-backoffice/pkg/util"
)

// StaffService provisions staff accounts with generated temporary
// credentials.
type StaffService struct {
	staff             repository.StaffRepository
	audit             *AuditService
	dispatcher        events.Dispatcher
	bcryptCost        int
	minPasswordLength int
}

// StaffCreateInput describes account provisioning payload.
type StaffCreateInput struct {
	Email             string
	FirstName         string
	LastName          *string
	TemporaryPassword string
}

// ProvisionedStaff pairs the created account with its one-time plaintext
// temporary password. The password appears only in this value: it is never
// persisted and never logged.
type ProvisionedStaff struct {
	Account           *domain.StaffAccount
	TemporaryPassword string
}

// NewStaffService constructs the service.
func NewStaffService(cfg config.AuthConfig, staff repository.StaffRepository, audit *AuditService, dispatcher events.Dispatcher) *StaffService {
	return &StaffService{
		staff:             staff,
		audit:             audit,
		dispatcher:        dispatcher,
		bcryptCost:        cfg.BcryptCost,
		minPasswordLength: cfg.MinPasswordLength,
	}
}

// CreateStaffAccount provisions a staff account. The role is fixed to STAFF
// on this path; admins are seeded out-of-band.
func (s *StaffService) CreateStaffAccount(ctx context.Context, actor domain.Actor, input StaffCreateInput) (*ProvisionedStaff, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	firstName := strings.TrimSpace(input.FirstName)
	if firstName == "" {
		return nil, apperrors.NewValidation("first name is required", nil)
	}

	tempPassword := input.TemporaryPassword
	if tempPassword != "" {
		if len(tempPassword) < s.minPasswordLength {
			return nil, apperrors.NewValidation("temporary password too short", map[string]any{
				"min_length": s.minPasswordLength,
			})
		}
	} else {
		tempPassword, err = auth.GenerateTemporaryPassword()
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
	}

	if existing, err := s.staff.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperrors.NewConflict("staff email already exists", map[string]any{"email": email})
	} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(tempPassword, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	account := &domain.StaffAccount{
		Email:        email,
		FirstName:    firstName,
		LastName:     input.LastName,
		PasswordHash: hash,
		Role:         domain.StaffRoleStaff,
		Active:       true,
	}
	if err := s.staff.Create(ctx, account); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.audit.Record(ctx, domain.AuditStaffCreate, domain.EntityStaff, account.ID, actor, map[string]any{
		"email": account.Email,
		"role":  account.Role,
	})
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:          uuid.NewString(),
			Type:        events.EventStaffCreated,
			EntityID:    account.ID,
			ActorUserID: actor.UserID,
			Timestamp:   time.Now(),
			Payload:     events.StaffCreatedPayload{Email: account.Email, Role: account.Role},
		})
	}

	return &ProvisionedStaff{Account: account, TemporaryPassword: tempPassword}, nil
}

// EnsureAdminAccount creates the configured bootstrap admin if no account
// holds that email yet. Idempotent across restarts.
func (s *StaffService) EnsureAdminAccount(ctx context.Context, email, password string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if len(password) < s.minPasswordLength {
		return apperrors.NewValidation("seed admin password too short", map[string]any{
			"min_length": s.minPasswordLength,
		})
	}

	if _, err := s.staff.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	account := &domain.StaffAccount{
		Email:        email,
		FirstName:    "Admin",
		PasswordHash: hash,
		Role:         domain.StaffRoleAdmin,
		Active:       true,
	}
	if err := s.staff.Create(ctx, account); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// ListStaffAccounts lists accounts with filters.
func (s *StaffService) ListStaffAccounts(ctx context.Context, filter repository.StaffFilter) ([]domain.StaffAccount, error) {
	accounts, err := s.staff.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return accounts, nil
}

// GetStaffAccount fetches one account.
func (s *StaffService) GetStaffAccount(ctx context.Context, id string) (*domain.StaffAccount, error) {
	account, err := s.staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("staff account", map[string]any{"staff_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return account, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", apperrors.NewValidation("email is required", nil)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", apperrors.NewValidation("invalid email address", map[string]any{"email": email})
	}
	return email, nil
}
