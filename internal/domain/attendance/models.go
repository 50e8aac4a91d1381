package attendance

import (
	"time"

	"hrms/internal/domain/dates"
	"hrms/internal/domain/enums"
)

type Attendance struct {
	ID             string                 `json:"id"`
	OrganizationID string                 `json:"organizationId"`
	EmployeeID     string                 `json:"employeeId"`
	Date           dates.Date             `json:"date"`
	Status         enums.AttendanceStatus `json:"status"`
	CheckInTime    string                 `json:"checkInTime"`
	CheckOutTime   string                 `json:"checkOutTime"`
	WorkHours      float64                `json:"workHours"`
	Comments       string                 `json:"comments"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

type Filter struct {
	EmployeeID string
	Status     enums.AttendanceStatus
	From       dates.Date
	To         dates.Date
	Limit      int
	Offset     int
}

// ClockState summarizes an employee's day for self-service.
type ClockState string

const (
	NotClockedIn ClockState = "not_clocked_in"
	ClockedIn    ClockState = "clocked_in"
	ClockedOut   ClockState = "clocked_out"
)

type DayStatus struct {
	State  ClockState  `json:"state"`
	Record *Attendance `json:"record,omitempty"`
}
