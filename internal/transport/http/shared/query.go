package shared

import (
	"net/http"
	"strings"

	"hrms/internal/domain/apperr"
)

type enumValue interface {
	~string
	Valid() bool
}

// QueryEnum reads an optional query parameter that must be one of allowed.
func QueryEnum[T enumValue](r *http.Request, name string, allowed []string) (T, error) {
	value := T(strings.TrimSpace(r.URL.Query().Get(name)))
	if value == "" || value.Valid() {
		return value, nil
	}
	return "", apperr.Invalid(name, "must be one of "+strings.Join(allowed, ", "))
}
