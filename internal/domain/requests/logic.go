package requests

import (
	"strings"

	"hrms/internal/domain/enums"
	"hrms/internal/domain/validation"
)

func normalize(r *Request) {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
	if r.Status == "" {
		r.Status = enums.RequestPending
	}
}

func validate(r Request) error {
	v := validation.New()
	v.Required("employeeId", r.EmployeeID)
	v.Required("departmentId", r.DepartmentID)
	v.Required("title", r.Title)
	v.MaxLen("title", r.Title, 100)
	v.Required("content", r.Content)
	v.MaxLen("content", r.Content, 1000)
	v.Enum("status", r.Status.Valid(), enums.RequestStatuses())
	return v.Err()
}

func checkTransition(from, to enums.RequestStatus) error {
	if from.CanTransition(to) {
		return nil
	}
	v := validation.New()
	v.Add("status", "cannot move from "+string(from)+" to "+string(to))
	return v.Err()
}
