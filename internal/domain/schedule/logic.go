package schedule

import (
	"strings"

	"hrms/internal/domain/enums"
	"hrms/internal/domain/validation"
)

func normalize(s *Shift) {
	s.StartTime = strings.TrimSpace(s.StartTime)
	s.EndTime = strings.TrimSpace(s.EndTime)
	s.Location = strings.TrimSpace(s.Location)
	s.Notes = strings.TrimSpace(s.Notes)
	if s.Shift == "" {
		s.Shift = enums.ShiftCustom
	}
	if s.Location == "" {
		s.Location = DefaultLocation
	}
	if s.Status == "" {
		s.Status = enums.ScheduleScheduled
	}
}

// validate lets only night shifts end on the following day.
func validate(s Shift) error {
	v := validation.New()
	v.Required("employeeId", s.EmployeeID)
	v.Required("createdById", s.CreatedByID)
	v.RequiredTime("date", s.Date.Time)
	v.TimeOfDay("startTime", s.StartTime, true)
	v.TimeOfDay("endTime", s.EndTime, true)
	v.Enum("shift", s.Shift.Valid(), enums.ShiftTypes())
	v.Enum("status", s.Status.Valid(), enums.ScheduleStatuses())
	v.MaxLen("location", s.Location, 100)
	v.MaxLen("notes", s.Notes, 500)
	if !v.HasIssues() {
		switch {
		case s.EndTime == s.StartTime:
			v.Add("endTime", "must differ from startTime")
		case s.EndTime < s.StartTime && s.Shift != enums.ShiftNight:
			v.Add("endTime", "must be after startTime")
		}
	}
	return v.Err()
}

func checkTransition(from, to enums.ScheduleStatus) error {
	if from.CanTransition(to) {
		return nil
	}
	v := validation.New()
	v.Add("status", "cannot move from "+string(from)+" to "+string(to))
	return v.Err()
}
