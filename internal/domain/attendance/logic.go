package attendance

import (
	"math"
	"strconv"
	"strings"

	"hrms/internal/domain/enums"
	"hrms/internal/domain/validation"
)

// WorkHours is the HH:MM span between check-in and check-out rounded to two
// decimals. A check-out earlier than the check-in wraps past midnight.
func WorkHours(checkIn, checkOut string) float64 {
	in, okIn := minutesOfDay(checkIn)
	out, okOut := minutesOfDay(checkOut)
	if !okIn || !okOut {
		return 0
	}
	span := out - in
	if span < 0 {
		span += 24 * 60
	}
	return math.Round(float64(span)/60*100) / 100
}

func minutesOfDay(value string) (int, bool) {
	hh, mm, found := strings.Cut(strings.TrimSpace(value), ":")
	if !found {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func validate(a Attendance) error {
	v := validation.New()
	v.Required("employeeId", a.EmployeeID)
	v.RequiredTime("date", a.Date.Time)
	v.Enum("status", a.Status.Valid(), enums.AttendanceStatuses())
	v.TimeOfDay("checkInTime", a.CheckInTime, false)
	v.TimeOfDay("checkOutTime", a.CheckOutTime, false)
	if a.CheckOutTime != "" && a.CheckInTime == "" {
		v.Add("checkOutTime", "requires checkInTime")
	}
	v.NonNegative("workHours", a.WorkHours < 0)
	if a.WorkHours > 24 {
		v.Add("workHours", "must not exceed 24")
	}
	v.MaxLen("comments", a.Comments, 200)
	return v.Err()
}

func fillDerived(a *Attendance) {
	a.CheckInTime = strings.TrimSpace(a.CheckInTime)
	a.CheckOutTime = strings.TrimSpace(a.CheckOutTime)
	if a.WorkHours == 0 && a.CheckInTime != "" && a.CheckOutTime != "" {
		a.WorkHours = WorkHours(a.CheckInTime, a.CheckOutTime)
	}
}
