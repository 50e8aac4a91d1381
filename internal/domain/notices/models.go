package notices

import (
	"time"

	"hrms/internal/domain/enums"
)

type Notice struct {
	ID             string             `json:"id"`
	OrganizationID string             `json:"organizationId"`
	DepartmentID   string             `json:"departmentId"`
	EmployeeID     string             `json:"employeeId"`
	CreatedByID    string             `json:"createdById"`
	Title          string             `json:"title"`
	Content        string             `json:"content"`
	Audience       enums.AudienceType `json:"audience"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

type Filter struct {
	DepartmentID string
	EmployeeID   string
	Audience     enums.AudienceType
	Limit        int
	Offset       int
}
