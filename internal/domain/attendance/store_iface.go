package attendance

import (
	"context"

	"hrms/internal/domain/dates"
)

type StoreAPI interface {
	Insert(ctx context.Context, a Attendance) (*Attendance, error)
	Get(ctx context.Context, orgID, id string) (*Attendance, error)
	ForDay(ctx context.Context, orgID, employeeID string, day dates.Date) (*Attendance, error)
	Update(ctx context.Context, orgID, id string, apply func(*Attendance) error) (*Attendance, error)
	UpdateForDay(ctx context.Context, orgID, employeeID string, day dates.Date, apply func(*Attendance) error) (*Attendance, error)
	ClockIn(ctx context.Context, orgID, employeeID string, day dates.Date, at string) (*Attendance, error)
	List(ctx context.Context, orgID string, f Filter) ([]Attendance, error)
}

var _ StoreAPI = (*Store)(nil)
