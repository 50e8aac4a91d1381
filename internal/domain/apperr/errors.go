// Package apperr defines the error taxonomy returned by the domain services.
package apperr

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries the field issues of a rejected payload. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Field == "" {
			parts = append(parts, issue.Reason)
			continue
		}
		parts = append(parts, issue.Field+" "+issue.Reason)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Invalid builds a single-issue ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Issues: []Issue{{Field: field, Reason: reason}}}
}

func NewValidationError(issues []Issue) *ValidationError {
	out := make([]Issue, len(issues))
	copy(out, issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return &ValidationError{Issues: out}
}

// Issues extracts field issues from err, or nil when err is not a validation failure.
func Issues(err error) []Issue {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Issues
	}
	return nil
}

// Prefix qualifies every issue field of a validation error, for nested payloads.
func Prefix(err error, prefix string) error {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	issues := make([]Issue, len(verr.Issues))
	for i, issue := range verr.Issues {
		issue.Field = prefix + issue.Field
		issues[i] = issue
	}
	return NewValidationError(issues)
}
