package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies a failure so callers can map it to a transport status.
type Kind string

const (
	KindValidation        Kind = "VALIDATION"
	KindConflict          Kind = "CONFLICT"
	KindNotFound          Kind = "NOT_FOUND"
	KindIllegalTransition Kind = "ILLEGAL_TRANSITION"
	KindUnauthenticated   Kind = "UNAUTHENTICATED"
	KindForbidden         Kind = "FORBIDDEN"
	KindUnavailable       Kind = "UNAVAILABLE"
	KindInternal          Kind = "INTERNAL"
)

// DomainError standardizes application errors.
type DomainError struct {
	Kind    Kind
	Message string
	Details map[string]any
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to an HTTP status code.
func (e *DomainError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindIllegalTransition:
		return http.StatusUnprocessableEntity
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewDomainError constructs a DomainError.
func NewDomainError(kind Kind, message string, details map[string]any) *DomainError {
	return &DomainError{Kind: kind, Message: message, Details: details}
}

func NewValidation(message string, details map[string]any) error {
	return NewDomainError(KindValidation, message, details)
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError(KindConflict, message, details)
}

func NewNotFound(resource string, details map[string]any) error {
	return NewDomainError(KindNotFound, fmt.Sprintf("%s not found", resource), details)
}

func NewIllegalTransition(message string, details map[string]any) error {
	return NewDomainError(KindIllegalTransition, message, details)
}

func NewUnauthenticated(message string) error {
	return NewDomainError(KindUnauthenticated, message, nil)
}

func NewForbidden(message string) error {
	return NewDomainError(KindForbidden, message, nil)
}

func NewUnavailable(message string, err error) error {
	return &DomainError{Kind: KindUnavailable, Message: message, Err: err}
}

func NewInternalError(err error) error {
	return &DomainError{Kind: KindInternal, Message: "internal server error", Err: err}
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind == kind
	}
	return false
}

// ToDomainError converts generic errors, including store-level pgx errors,
// to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &DomainError{Kind: KindNotFound, Message: "resource not found"}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return &DomainError{Kind: KindConflict, Message: "resource already exists", Err: err}
		case "23503":
			return &DomainError{Kind: KindValidation, Message: "referenced resource does not exist", Err: err}
		}
	}
	return &DomainError{Kind: KindInternal, Message: "internal server error", Err: err}
}

// MapError converts generic errors to DomainError.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	return ToDomainError(err)
}
