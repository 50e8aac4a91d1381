package auth

import (
	"time"

	"hrms/internal/domain/core"
)

// Identity is an authenticated caller.
type Identity struct {
	SubjectID      string           `json:"subjectId"`
	Kind           core.AccountKind `json:"kind"`
	OrganizationID string           `json:"organizationId"`
	DepartmentID   string           `json:"departmentId"`
	SessionID      string           `json:"sessionId"`
}

type Session struct {
	ID             string
	OrganizationID string
	SubjectID      string
	SubjectKind    core.AccountKind
	TokenHash      string
	ExpiresAt      time.Time
	RevokedAt      *time.Time
	CreatedAt      time.Time
}

type LoginResult struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Account   *core.Account `json:"account"`
}
