package domain

import "time"

// StaffRole enumerates back-office operator roles.
type StaffRole string

const (
	StaffRoleStaff StaffRole = "STAFF"
	StaffRoleAdmin StaffRole = "ADMIN"
)

// StaffAccount models a support agent or administrator.
type StaffAccount struct {
	ID           string
	Email        string
	FirstName    string
	LastName     *string
	PasswordHash string
	Role         StaffRole
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
