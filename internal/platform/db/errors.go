package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"hrms/internal/domain/apperr"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	codeInvalidText         = "22P02"
	codeDatetimeOverflow    = "22008"
	codeNumericOutOfRange   = "22003"
	codeStringTooLong       = "22001"
)

// MapError translates pgx errors on insert, select and update into the
// apperr taxonomy. Errors that are already classified pass through.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%w: %s", apperr.ErrConflict, constraintLabel(pgErr))
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: referenced record %s", apperr.ErrNotFound, constraintLabel(pgErr))
	case codeCheckViolation, codeNotNullViolation, codeDatetimeOverflow, codeNumericOutOfRange, codeStringTooLong:
		field := pgErr.ColumnName
		if field == "" {
			field = pgErr.ConstraintName
		}
		if field == "" {
			field = "body"
		}
		return apperr.Invalid(field, "violates "+constraintLabel(pgErr))
	case codeInvalidText:
		return apperr.ErrNotFound
	}
	return err
}

// MapDeleteError is MapError for DELETE statements, where a foreign key
// violation means the row is still referenced.
func MapDeleteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		return fmt.Errorf("%w: record is still referenced by %s", apperr.ErrConflict, pgErr.TableName)
	}
	return MapError(err)
}

func constraintLabel(pgErr *pgconn.PgError) string {
	if pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}
	return pgErr.Message
}
