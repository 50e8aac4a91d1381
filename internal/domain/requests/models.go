// Package requests handles employee-generated requests and their HR decisions.
package requests

import (
	"time"

	"hrms/internal/domain/enums"
)

type Request struct {
	ID             string              `json:"id"`
	OrganizationID string              `json:"organizationId"`
	EmployeeID     string              `json:"employeeId"`
	DepartmentID   string              `json:"departmentId"`
	ApprovedByID   string              `json:"approvedById"`
	Title          string              `json:"title"`
	Content        string              `json:"content"`
	Status         enums.RequestStatus `json:"status"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

type Filter struct {
	EmployeeID   string
	DepartmentID string
	Status       enums.RequestStatus
	Limit        int
	Offset       int
}
