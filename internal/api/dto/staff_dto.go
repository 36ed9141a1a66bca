package dto

import (
	"time"

	"github.com/spec-kit/insighta-backoffice/internal/domain"
)

// StaffCreateRequest payload. TemporaryPassword is optional; when empty the
// provisioner generates one.
type StaffCreateRequest struct {
	Email             string  `json:"email"`
	FirstName         string  `json:"first_name"`
	LastName          *string `json:"last_name"`
	TemporaryPassword string  `json:"temporary_password"`
}

// StaffResponse response. PasswordHash never leaves the service.
type StaffResponse struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	FirstName string           `json:"first_name"`
	LastName  *string          `json:"last_name"`
	Role      domain.StaffRole `json:"role"`
	Active    bool             `json:"active"`
	CreatedAt time.Time        `json:"created_at"`
}

// ProvisionedStaffResponse carries the one-time temporary password alongside
// the account. Returned exactly once at creation.
type ProvisionedStaffResponse struct {
	Staff             StaffResponse `json:"staff"`
	TemporaryPassword string        `json:"temporary_password"`
}

// NewStaffResponse maps a domain staff account.
func NewStaffResponse(staff *domain.StaffAccount) StaffResponse {
	return StaffResponse{
		ID:        staff.ID,
		Email:     staff.Email,
		FirstName: staff.FirstName,
		LastName:  staff.LastName,
		Role:      staff.Role,
		Active:    staff.Active,
		CreatedAt: staff.CreatedAt,
	}
}
