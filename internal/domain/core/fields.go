package core

import (
	"strings"

	"hrms/internal/domain/enums"
	"hrms/internal/domain/validation"
)

// NormalizeAccount trims free-text fields and lower-cases the email so the
// unique index compares addresses case-insensitively.
func NormalizeAccount(a *Account) {
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.LastName = strings.TrimSpace(a.LastName)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.ContactNumber = strings.TrimSpace(a.ContactNumber)
	a.DepartmentID = strings.TrimSpace(a.DepartmentID)
}

func validateAccount(a Account, requirePassword bool) error {
	v := validation.New()
	v.Required("firstName", a.FirstName)
	v.MaxLen("firstName", a.FirstName, 100)
	v.Required("lastName", a.LastName)
	v.MaxLen("lastName", a.LastName, 100)
	v.Email("email", a.Email)
	v.MaxLen("email", a.Email, 100)
	v.Required("contactNumber", a.ContactNumber)
	v.MaxLen("contactNumber", a.ContactNumber, 20)
	v.Enum("role", a.Role.Valid(), enums.Roles())
	if requirePassword && a.Password == "" {
		v.Add("password", "is required")
	}
	checkPassword(v, a.Password)
	return v.Err()
}

// ValidatePassword applies the account password rules to a new password.
func ValidatePassword(password string) error {
	v := validation.New()
	if password == "" {
		v.Add("password", "is required")
	}
	checkPassword(v, password)
	return v.Err()
}

func checkPassword(v *validation.Validator, password string) {
	if password != "" && len(password) < 8 {
		v.Add("password", "must be at least 8 characters")
	}
	// bcrypt rejects longer input.
	if len(password) > 72 {
		v.Add("password", "must be at most 72 bytes")
	}
}

func validateDepartment(d Department) error {
	v := validation.New()
	v.Required("name", d.Name)
	v.MaxLen("name", d.Name, 100)
	v.MaxLen("description", d.Description, 500)
	return v.Err()
}

// keepAccountImmutables restores the fields a caller may never patch.
func keepAccountImmutables(next *Account, current Account) {
	next.ID = current.ID
	next.OrganizationID = current.OrganizationID
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = current.UpdatedAt
	next.PasswordHash = current.PasswordHash
	next.VerificationToken = current.VerificationToken
	next.VerificationTokenExpires = current.VerificationTokenExpires
	next.ResetPasswordToken = current.ResetPasswordToken
	next.ResetPasswordExpires = current.ResetPasswordExpires
	next.LastLogin = current.LastLogin
}
