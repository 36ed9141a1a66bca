package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusNew        TicketStatus = "NEW"
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// AllTicketStatuses lists every known status in lifecycle order.
var AllTicketStatuses = []TicketStatus{
	TicketStatusNew,
	TicketStatusOpen,
	TicketStatusInProgress,
	TicketStatusResolved,
	TicketStatusClosed,
}

// IsValidTicketStatus reports whether the label belongs to the status set.
func IsValidTicketStatus(status TicketStatus) bool {
	for _, candidate := range AllTicketStatuses {
		if candidate == status {
			return true
		}
	}
	return false
}

// Ticket is the aggregate for support complaints handled by staff.
type Ticket struct {
	ID         string
	Subject    string
	CategoryID *string
	AssigneeID *string
	Status     TicketStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TransitionTable maps each status to the set of legal next statuses.
// The engine is generic over the table; the concrete edges are built from
// configuration at startup.
type TransitionTable map[TicketStatus][]TicketStatus

// Allows reports whether moving from current to next is legal.
func (t TransitionTable) Allows(current, next TicketStatus) bool {
	for _, candidate := range t[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// DefaultTransitions builds the standard lifecycle. Resolved tickets may
// always be reopened; reopening closed tickets is a configuration choice.
func DefaultTransitions(allowReopenClosed bool) TransitionTable {
	table := TransitionTable{
		TicketStatusNew:        {TicketStatusOpen},
		TicketStatusOpen:       {TicketStatusInProgress, TicketStatusResolved},
		TicketStatusInProgress: {TicketStatusOpen, TicketStatusResolved},
		TicketStatusResolved:   {TicketStatusClosed, TicketStatusOpen},
		TicketStatusClosed:     {},
	}
	if allowReopenClosed {
		table[TicketStatusClosed] = []TicketStatus{TicketStatusOpen}
	}
	return table
}
