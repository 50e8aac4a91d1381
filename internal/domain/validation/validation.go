// Package validation collects payload issues into an apperr.ValidationError.
package validation

import (
	"regexp"
	"strings"
	"time"

	"hrms/internal/domain/apperr"
)

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// Email reports whether value has the local@domain.tld shape.
func Email(value string) bool {
	return emailPattern.MatchString(value)
}

type Validator struct {
	issues []apperr.Issue
}

func New() *Validator {
	return &Validator{issues: make([]apperr.Issue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, apperr.Issue{Field: strings.TrimSpace(field), Reason: reason})
}

func (v *Validator) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
}

func (v *Validator) MaxLen(field, value string, limit int) {
	if len([]rune(value)) > limit {
		v.Add(field, "is too long")
	}
}

func (v *Validator) Email(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
		return
	}
	if !Email(value) {
		v.Add(field, "must be a valid email address")
	}
}

// Enum records an issue listing allowed when valid is false.
func (v *Validator) Enum(field string, valid bool, allowed []string) {
	if !valid {
		v.Add(field, "must be one of "+strings.Join(allowed, ", "))
	}
}

// TimeOfDay checks the 24h HH:MM form. Empty values pass unless required.
func (v *Validator) TimeOfDay(field, value string, required bool) {
	if value == "" {
		if required {
			v.Add(field, "is required")
		}
		return
	}
	if !timeOfDayPattern.MatchString(value) {
		v.Add(field, "must be a time in HH:MM format")
	}
}

func (v *Validator) RequiredTime(field string, value time.Time) {
	if value.IsZero() {
		v.Add(field, "is required")
	}
}

func (v *Validator) DateOrder(startField string, start time.Time, endField string, end time.Time) {
	if start.IsZero() || end.IsZero() {
		return
	}
	if end.Before(start) {
		v.Add(startField, "must be on or before "+endField)
		v.Add(endField, "must be on or after "+startField)
	}
}

func (v *Validator) NonNegative(field string, negative bool) {
	if negative {
		v.Add(field, "must not be negative")
	}
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

// Err returns nil when no issues were recorded.
func (v *Validator) Err() error {
	if !v.HasIssues() {
		return nil
	}
	return apperr.NewValidationError(v.issues)
}
