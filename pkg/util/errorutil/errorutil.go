package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Error codes carried by DomainError.
const (
	CodeValidation = "VALIDATION_FAILED"
	CodeConflict   = "CONFLICT"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

// PostgreSQL SQLSTATE codes the store reports for constraint failures.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateNotNullViolation    = "23502"
	sqlStateCheckViolation      = "23514"
	sqlStateInvalidText         = "22P02"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
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

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

// NewValidationError reports one or more field complaints as a single message.
func NewValidationError(complaints ...string) error {
	message := strings.Join(complaints, "; ")
	if message == "" {
		message = "validation failed"
	}
	return NewDomainError(CodeValidation, message, http.StatusBadRequest)
}

func NewNotFound(resource string) error {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

// NewConflict reports a uniqueness or referential violation. Conflicts are
// surfaced as 400 so clients treat them like any other fixable input.
func NewConflict(message string) error {
	return NewDomainError(CodeConflict, message, http.StatusBadRequest)
}

// NewDuplicate reports a uniqueness violation on field.
func NewDuplicate(field string) error {
	return NewConflict(fmt.Sprintf("Duplicate value for %s", field))
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "Internal Server Error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IsNotFound reports whether err is a NOT_FOUND DomainError.
func IsNotFound(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == CodeNotFound
}

// FromStoreError translates a repository error into a DomainError. resource
// names the entity used in not-found messages.
func FromStoreError(err error, resource string) error {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NewNotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateUniqueViolation:
			return NewDuplicate(constraintField(pgErr.ConstraintName))
		case sqlStateForeignKeyViolation:
			return NewConflict(fmt.Sprintf("%s references a record that does not exist or is still referenced", resource))
		case sqlStateNotNullViolation:
			return NewValidationError(fmt.Sprintf("%s is required", fieldOrDefault(pgErr.ColumnName)))
		case sqlStateCheckViolation, sqlStateInvalidText:
			return NewValidationError(pgErr.Message)
		}
	}
	return NewInternalError(err)
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(FromStoreError(err, "Resource"), &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    "Internal Server Error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// constraintField derives the column from names like "employees_email_key".
func constraintField(constraint string) string {
	name := strings.TrimSuffix(constraint, "_key")
	if idx := strings.Index(name, "_"); idx >= 0 && idx < len(name)-1 {
		return name[idx+1:]
	}
	return fieldOrDefault(name)
}

func fieldOrDefault(name string) string {
	if name == "" {
		return "field"
	}
	return name
}
