package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/internal/domain/apperr"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: apperr.ErrNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("load: %w", pgx.ErrNoRows), want: apperr.ErrNotFound},
		{name: "unique", err: &pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"}, want: apperr.ErrConflict},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: apperr.ErrNotFound},
		{name: "check", err: &pgconn.PgError{Code: "23514", ConstraintName: "leaves_date_order_check"}, want: apperr.ErrValidation},
		{name: "numeric overflow", err: &pgconn.PgError{Code: "22003", Message: "numeric field overflow"}, want: apperr.ErrValidation},
		{name: "string too long", err: &pgconn.PgError{Code: "22001", Message: "value too long"}, want: apperr.ErrValidation},
		{name: "bad uuid", err: &pgconn.PgError{Code: "22P02"}, want: apperr.ErrNotFound},
		{name: "classified", err: apperr.ErrForbidden, want: apperr.ErrForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, MapError(tc.err), tc.want)
		})
	}
}

func TestMapErrorPassesThroughUnknown(t *testing.T) {
	require.NoError(t, MapError(nil))
	boom := errors.New("boom")
	assert.Same(t, boom, MapError(boom))
	pgErr := &pgconn.PgError{Code: "40001"}
	assert.Equal(t, error(pgErr), MapError(pgErr))
}

func TestMapDeleteErrorTreatsReferencesAsConflict(t *testing.T) {
	err := MapDeleteError(&pgconn.PgError{Code: "23503", TableName: "employees"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.ErrorIs(t, MapDeleteError(pgx.ErrNoRows), apperr.ErrNotFound)
}

func TestCheckViolationNamesColumn(t *testing.T) {
	err := MapError(&pgconn.PgError{Code: "23514", ConstraintName: "salaries_basic_pay_check", ColumnName: "basic_pay"})
	issues := apperr.Issues(err)
	require.Len(t, issues, 1)
	assert.Equal(t, "basic_pay", issues[0].Field)
}

func TestMigrationNamesSorted(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "0001_init.sql", names[0])
}

func TestNullIfEmpty(t *testing.T) {
	empty := ""
	value := "x"
	assert.Nil(t, NullIfEmpty(nil))
	assert.Nil(t, NullIfEmpty(&empty))
	assert.Equal(t, "x", NullIfEmpty(&value))
}
