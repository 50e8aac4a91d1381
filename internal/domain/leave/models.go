package leave

import (
	"time"

	"hrms/internal/domain/dates"
	"hrms/internal/domain/enums"
)

const DefaultTitle = "Leave Application"

type Leave struct {
	ID             string            `json:"id"`
	OrganizationID string            `json:"organizationId"`
	EmployeeID     string            `json:"employeeId"`
	ApprovedByID   string            `json:"approvedById"`
	StartDate      dates.Date        `json:"startDate"`
	EndDate        dates.Date        `json:"endDate"`
	Title          string            `json:"title"`
	Reason         string            `json:"reason"`
	Status         enums.LeaveStatus `json:"status"`
	Days           int               `json:"days"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type Filter struct {
	EmployeeID string
	Status     enums.LeaveStatus
	From       dates.Date
	To         dates.Date
	Limit      int
	Offset     int
}
