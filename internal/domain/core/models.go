package core

import (
	"time"

	"hrms/internal/domain/enums"
)

// AccountKind names the table an account lives in.
type AccountKind string

const (
	KindEmployee AccountKind = "employee"
	KindHR       AccountKind = "hr"
)

func (k AccountKind) Valid() bool {
	return k == KindEmployee || k == KindHR
}

// Account is the shared shape of employees and HR users. Password is only
// ever populated on input and is cleared once hashed.
type Account struct {
	ID                       string     `json:"id"`
	OrganizationID           string     `json:"organizationId"`
	DepartmentID             string     `json:"departmentId"`
	FirstName                string     `json:"firstName"`
	LastName                 string     `json:"lastName"`
	Email                    string     `json:"email"`
	Password                 string     `json:"password,omitempty"`
	PasswordHash             string     `json:"-"`
	ContactNumber            string     `json:"contactNumber"`
	Role                     enums.Role `json:"role"`
	IsVerified               bool       `json:"isVerified"`
	VerificationToken        string     `json:"-"`
	VerificationTokenExpires *time.Time `json:"-"`
	ResetPasswordToken       string     `json:"-"`
	ResetPasswordExpires     *time.Time `json:"-"`
	LastLogin                *time.Time `json:"lastLogin,omitempty"`
	CreatedAt                time.Time  `json:"createdAt"`
	UpdatedAt                time.Time  `json:"updatedAt"`
}

type Employee Account

type HumanResources Account

type Department struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Filter struct {
	DepartmentID string
	Role         enums.Role
	Limit        int
	Offset       int
}
