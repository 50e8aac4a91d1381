package db

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"hrms/internal/domain/apperr"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Where accumulates AND-ed equality filters. Every query starts scoped to
// one organization.
type Where struct {
	clauses []string
	args    []any
	err     error
}

func ForOrganization(column, orgID string) *Where {
	w := &Where{}
	w.add(column, orgID)
	return w
}

func (w *Where) add(column string, value any) {
	w.args = append(w.args, value)
	w.clauses = append(w.clauses, column+" = $"+strconv.Itoa(len(w.args)))
}

// Eq adds column = value unless value is empty.
func (w *Where) Eq(column, value string) *Where {
	if strings.TrimSpace(value) != "" {
		w.add(column, value)
	}
	return w
}

// ID is Eq for uuid columns. A malformed value is reported by Err against
// field instead of reaching the database.
func (w *Where) ID(column, field, value string) *Where {
	value = strings.TrimSpace(value)
	if value == "" {
		return w
	}
	if err := CheckID(field, value); err != nil {
		if w.err == nil {
			w.err = err
		}
		return w
	}
	w.add(column, value)
	return w
}

// Err returns the first malformed filter value, if any.
func (w *Where) Err() error {
	return w.err
}

func CheckID(field, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return apperr.Invalid(field, "must be a valid id")
	}
	return nil
}

// Any adds "column = ANY(values)" unless values is empty.
func (w *Where) Any(column string, values []string) *Where {
	if len(values) == 0 {
		return w
	}
	w.args = append(w.args, values)
	w.clauses = append(w.clauses, column+" = ANY($"+strconv.Itoa(len(w.args))+")")
	return w
}

// Raw adds clause, replacing each $? with the placeholder of the next value.
func (w *Where) Raw(clause string, values ...any) *Where {
	for _, value := range values {
		w.args = append(w.args, value)
		clause = strings.Replace(clause, "$?", "$"+strconv.Itoa(len(w.args)), 1)
	}
	w.clauses = append(w.clauses, clause)
	return w
}

func (w *Where) SQL() string {
	return "WHERE " + strings.Join(w.clauses, " AND ")
}

// Page appends LIMIT and OFFSET placeholders, clamping limit to MaxLimit.
func (w *Where) Page(limit, offset int) string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	w.args = append(w.args, limit, offset)
	n := len(w.args)
	return "LIMIT $" + strconv.Itoa(n-1) + " OFFSET $" + strconv.Itoa(n)
}

func (w *Where) Args() []any {
	return w.args
}
