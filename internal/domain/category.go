package domain

import "time"

// ComplaintCategory groups tickets by complaint type.
type ComplaintCategory struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
