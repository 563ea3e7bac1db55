package errorutil_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/clinic-roster/pkg/util/errorutil"
)

func TestNewValidationError_JoinsComplaints(t *testing.T) {
	t.Parallel()

	err := errorutil.NewValidationError("First name is required", "Email is required")

	domainErr := errorutil.ToDomainError(err)
	assert.Equal(t, errorutil.CodeValidation, domainErr.Code)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
	assert.Equal(t, "First name is required; Email is required", domainErr.Message)
}

func TestFromStoreError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		code    string
		status  int
		message string
	}{
		{
			name:    "no rows",
			err:     fmt.Errorf("get employee: %w", pgx.ErrNoRows),
			code:    errorutil.CodeNotFound,
			status:  http.StatusNotFound,
			message: "Employee not found",
		},
		{
			name:    "unique violation",
			err:     &pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"},
			code:    errorutil.CodeConflict,
			status:  http.StatusBadRequest,
			message: "Duplicate value for email",
		},
		{
			name:    "unique violation without constraint",
			err:     &pgconn.PgError{Code: "23505"},
			code:    errorutil.CodeConflict,
			status:  http.StatusBadRequest,
			message: "Duplicate value for field",
		},
		{
			name:    "not null violation",
			err:     &pgconn.PgError{Code: "23502", ColumnName: "first_name"},
			code:    errorutil.CodeValidation,
			status:  http.StatusBadRequest,
			message: "first_name is required",
		},
		{
			name:    "unexpected",
			err:     assert.AnError,
			code:    errorutil.CodeInternal,
			status:  http.StatusInternalServerError,
			message: "Internal Server Error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var domainErr *errorutil.DomainError
			require.ErrorAs(t, errorutil.FromStoreError(tc.err, "Employee"), &domainErr)
			assert.Equal(t, tc.code, domainErr.Code)
			assert.Equal(t, tc.status, domainErr.HTTPStatus)
			assert.Equal(t, tc.message, domainErr.Message)
		})
	}
}

func TestFromStoreError_KeepsDomainErrors(t *testing.T) {
	t.Parallel()

	guard := errorutil.NewConflict("Cannot delete department with assigned employees")

	assert.Same(t, guard, errorutil.FromStoreError(guard, "Department"))
	assert.NoError(t, errorutil.FromStoreError(nil, "Department"))
}

func TestInternalError_Unwraps(t *testing.T) {
	t.Parallel()

	err := errorutil.NewInternalError(assert.AnError)

	assert.True(t, errors.Is(err, assert.AnError))
	assert.False(t, errorutil.IsNotFound(err))
	assert.True(t, errorutil.IsNotFound(errorutil.NewNotFound("Department")))
}
