package schedule

import (
	"time"

	"hrms/internal/domain/dates"
	"hrms/internal/domain/enums"
)

const DefaultLocation = "Office"

// Shift is one employee's working slot on a date.
type Shift struct {
	ID             string               `json:"id"`
	OrganizationID string               `json:"organizationId"`
	EmployeeID     string               `json:"employeeId"`
	CreatedByID    string               `json:"createdById"`
	Date           dates.Date           `json:"date"`
	StartTime      string               `json:"startTime"`
	EndTime        string               `json:"endTime"`
	Shift          enums.ShiftType      `json:"shift"`
	Location       string               `json:"location"`
	Notes          string               `json:"notes"`
	Status         enums.ScheduleStatus `json:"status"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

type Filter struct {
	EmployeeID string
	Status     enums.ScheduleStatus
	From       dates.Date
	To         dates.Date
	Limit      int
	Offset     int
}
