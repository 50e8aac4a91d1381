package shared

import (
	"net/http"
	"strings"
	"time"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/dates"
)

// QueryDate reads an optional YYYY-MM-DD (or RFC3339) query parameter.
func QueryDate(r *http.Request, name string) (dates.Date, error) {
	value, err := dates.Parse(r.URL.Query().Get(name))
	if err != nil {
		return dates.Date{}, apperr.Invalid(name, "must be a valid date in YYYY-MM-DD format")
	}
	return value, nil
}

// QueryTime reads an optional RFC3339 or YYYY-MM-DD query parameter as a UTC instant.
func QueryTime(r *http.Request, name string) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed.UTC(), nil
	}
	day, err := dates.Parse(raw)
	if err != nil {
		return time.Time{}, apperr.Invalid(name, "must be a valid date or RFC3339 timestamp")
	}
	return day.Time, nil
}
