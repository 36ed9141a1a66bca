package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/insighta-backoffice/internal/domain"
	apperrors "github.com/spec-kit/insighta-backoffice/pkg/util"
)

func TestTicketStatusUpdateRequestValidate(t *testing.T) {
	expected := "NEW"
	req := TicketStatusUpdateRequest{Status: "OPEN", ExpectedStatus: &expected}

	requested, expectedStatus, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusOpen, requested)
	require.NotNil(t, expectedStatus)
	assert.Equal(t, domain.TicketStatusNew, *expectedStatus)
}

func TestTicketStatusUpdateRequestValidate_NoExpected(t *testing.T) {
	req := TicketStatusUpdateRequest{Status: "RESOLVED"}

	requested, expectedStatus, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusResolved, requested)
	assert.Nil(t, expectedStatus)
}

func TestTicketStatusUpdateRequestValidate_Rejections(t *testing.T) {
	bogus := "ARCHIVED"
	lower := "open"

	cases := []struct {
		name string
		req  TicketStatusUpdateRequest
	}{
		{"unknown status", TicketStatusUpdateRequest{Status: "ARCHIVED"}},
		{"lowercase status", TicketStatusUpdateRequest{Status: "open"}},
		{"empty status", TicketStatusUpdateRequest{}},
		{"unknown expected", TicketStatusUpdateRequest{Status: "OPEN", ExpectedStatus: &bogus}},
		{"lowercase expected", TicketStatusUpdateRequest{Status: "OPEN", ExpectedStatus: &lower}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := tc.req.Validate()
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		})
	}
}
