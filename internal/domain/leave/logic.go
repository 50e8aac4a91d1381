package leave

import (
	"strings"

	"hrms/internal/domain/dates"
	"hrms/internal/domain/enums"
	"hrms/internal/domain/validation"
)

// CalculateDays counts calendar days in the inclusive range, or 0 when the
// range is empty or reversed.
func CalculateDays(start, end dates.Date) int {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return 0
	}
	return int(end.Sub(start.Time).Hours()/24) + 1
}

func normalize(l *Leave) {
	l.Title = strings.TrimSpace(l.Title)
	l.Reason = strings.TrimSpace(l.Reason)
	if l.Title == "" {
		l.Title = DefaultTitle
	}
	if l.Status == "" {
		l.Status = enums.LeavePending
	}
	l.Days = CalculateDays(l.StartDate, l.EndDate)
}

func validate(l Leave) error {
	v := validation.New()
	v.Required("employeeId", l.EmployeeID)
	v.RequiredTime("startDate", l.StartDate.Time)
	v.RequiredTime("endDate", l.EndDate.Time)
	v.DateOrder("startDate", l.StartDate.Time, "endDate", l.EndDate.Time)
	v.MaxLen("title", l.Title, 100)
	v.Required("reason", l.Reason)
	v.MaxLen("reason", l.Reason, 500)
	v.Enum("status", l.Status.Valid(), enums.LeaveStatuses())
	return v.Err()
}

func checkTransition(from, to enums.LeaveStatus) error {
	if from.CanTransition(to) {
		return nil
	}
	v := validation.New()
	v.Add("status", "cannot move from "+string(from)+" to "+string(to))
	return v.Err()
}
