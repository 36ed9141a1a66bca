package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindConflict, http.StatusConflict},
		{KindNotFound, http.StatusNotFound},
		{KindIllegalTransition, http.StatusUnprocessableEntity},
		{KindUnauthenticated, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindUnavailable, http.StatusServiceUnavailable},
		{KindInternal, http.StatusInternalServerError},
		{Kind("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		err := NewDomainError(tc.kind, "boom", nil)
		assert.Equal(t, tc.want, err.HTTPStatus(), "kind %s", tc.kind)
	}
}

func TestIsKind(t *testing.T) {
	err := NewConflict("status moved", nil)
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindNotFound))

	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, IsKind(wrapped, KindConflict))

	assert.False(t, IsKind(errors.New("plain"), KindConflict))
	assert.False(t, IsKind(nil, KindConflict))
}

func TestToDomainError_PassesThrough(t *testing.T) {
	original := NewDomainError(KindValidation, "bad input", map[string]any{"field": "name"})
	mapped := ToDomainError(original)
	assert.Same(t, original, mapped)
}

func TestToDomainError_StoreErrors(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	require.NotNil(t, mapped)
	assert.Equal(t, KindNotFound, mapped.Kind)

	mapped = ToDomainError(&pgconn.PgError{Code: "23505"})
	assert.Equal(t, KindConflict, mapped.Kind)

	mapped = ToDomainError(&pgconn.PgError{Code: "23503"})
	assert.Equal(t, KindValidation, mapped.Kind)

	mapped = ToDomainError(&pgconn.PgError{Code: "42P01"})
	assert.Equal(t, KindInternal, mapped.Kind)

	mapped = ToDomainError(errors.New("connection reset"))
	assert.Equal(t, KindInternal, mapped.Kind)

	assert.Nil(t, ToDomainError(nil))
	assert.NoError(t, MapError(nil))
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewInternalError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}
