package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/dates"
	"hrms/internal/domain/enums"
)

type Service struct {
	Store StoreAPI
	Now   func() time.Time
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store, Now: time.Now}
}

func (s *Service) now() time.Time {
	return s.Now().UTC()
}

func (s *Service) Create(ctx context.Context, orgID string, a Attendance) (*Attendance, error) {
	a.OrganizationID = orgID
	if a.Date.IsZero() {
		a.Date = dates.Of(s.now())
	}
	if a.Status == "" {
		a.Status = enums.AttendancePresent
	}
	fillDerived(&a)
	if err := validate(a); err != nil {
		return nil, err
	}
	return s.Store.Insert(ctx, a)
}

func (s *Service) Get(ctx context.Context, orgID, id string) (*Attendance, error) {
	return s.Store.Get(ctx, orgID, id)
}

// Update applies mutate to the locked record. The owning employee never changes.
func (s *Service) Update(ctx context.Context, orgID, id string, mutate func(*Attendance) error) (*Attendance, error) {
	return s.Store.Update(ctx, orgID, id, func(current *Attendance) error {
		snapshot := *current
		if err := mutate(current); err != nil {
			return err
		}
		current.ID = snapshot.ID
		current.OrganizationID = snapshot.OrganizationID
		current.EmployeeID = snapshot.EmployeeID
		current.CreatedAt = snapshot.CreatedAt
		current.UpdatedAt = snapshot.UpdatedAt
		if current.CheckOutTime != snapshot.CheckOutTime || current.CheckInTime != snapshot.CheckInTime {
			if current.WorkHours == snapshot.WorkHours {
				current.WorkHours = 0
			}
		}
		fillDerived(current)
		return validate(*current)
	})
}

func (s *Service) List(ctx context.Context, orgID string, f Filter) ([]Attendance, error) {
	return s.Store.List(ctx, orgID, f)
}

func (s *Service) ClockIn(ctx context.Context, orgID, employeeID string) (*Attendance, error) {
	now := s.now()
	return s.Store.ClockIn(ctx, orgID, employeeID, dates.Of(now), now.Format("15:04"))
}

// ClockOut stamps the day's check-out and computes the worked hours.
func (s *Service) ClockOut(ctx context.Context, orgID, employeeID string) (*Attendance, error) {
	now := s.now()
	out, err := s.Store.UpdateForDay(ctx, orgID, employeeID, dates.Of(now), func(current *Attendance) error {
		if current.CheckInTime == "" {
			return apperr.Invalid("checkInTime", "clock in before clocking out")
		}
		if current.CheckOutTime != "" {
			return fmt.Errorf("%w: already clocked out", apperr.ErrConflict)
		}
		current.CheckOutTime = now.Format("15:04")
		current.WorkHours = WorkHours(current.CheckInTime, current.CheckOutTime)
		return nil
	})
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.Invalid("checkInTime", "clock in before clocking out")
	}
	return out, err
}

func (s *Service) Today(ctx context.Context, orgID, employeeID string) (DayStatus, error) {
	record, err := s.Store.ForDay(ctx, orgID, employeeID, dates.Of(s.now()))
	if errors.Is(err, apperr.ErrNotFound) {
		return DayStatus{State: NotClockedIn}, nil
	}
	if err != nil {
		return DayStatus{}, err
	}
	switch {
	case record.CheckOutTime != "":
		return DayStatus{State: ClockedOut, Record: record}, nil
	case record.CheckInTime != "":
		return DayStatus{State: ClockedIn, Record: record}, nil
	}
	return DayStatus{State: NotClockedIn, Record: record}, nil
}
