package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTransitions(t *testing.T) {
	table := DefaultTransitions(false)

	legal := []struct{ from, to TicketStatus }{
		{TicketStatusNew, TicketStatusOpen},
		{TicketStatusOpen, TicketStatusInProgress},
		{TicketStatusOpen, TicketStatusResolved},
		{TicketStatusInProgress, TicketStatusOpen},
		{TicketStatusInProgress, TicketStatusResolved},
		{TicketStatusResolved, TicketStatusClosed},
		{TicketStatusResolved, TicketStatusOpen},
	}
	for _, tc := range legal {
		assert.True(t, table.Allows(tc.from, tc.to), "%s -> %s should be legal", tc.from, tc.to)
	}

	illegal := []struct{ from, to TicketStatus }{
		{TicketStatusNew, TicketStatusResolved},
		{TicketStatusNew, TicketStatusClosed},
		{TicketStatusOpen, TicketStatusClosed},
		{TicketStatusClosed, TicketStatusOpen},
		{TicketStatusClosed, TicketStatusClosed},
		{TicketStatusOpen, TicketStatusOpen},
	}
	for _, tc := range illegal {
		assert.False(t, table.Allows(tc.from, tc.to), "%s -> %s should be illegal", tc.from, tc.to)
	}
}

func TestDefaultTransitions_ReopenClosed(t *testing.T) {
	table := DefaultTransitions(true)

	assert.True(t, table.Allows(TicketStatusClosed, TicketStatusOpen))
	assert.False(t, table.Allows(TicketStatusClosed, TicketStatusInProgress))
	assert.False(t, table.Allows(TicketStatusClosed, TicketStatusResolved))
}

func TestTransitionTable_UnknownStatus(t *testing.T) {
	table := DefaultTransitions(true)

	assert.False(t, table.Allows("ARCHIVED", TicketStatusOpen))
	assert.False(t, table.Allows(TicketStatusOpen, "ARCHIVED"))
}

func TestIsValidTicketStatus(t *testing.T) {
	for _, status := range AllTicketStatuses {
		assert.True(t, IsValidTicketStatus(status))
	}
	assert.False(t, IsValidTicketStatus("ARCHIVED"))
	assert.False(t, IsValidTicketStatus("open"))
	assert.False(t, IsValidTicketStatus(""))
}
