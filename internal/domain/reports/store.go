package reports

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/platform/db"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

// Dashboard gathers every count in one round trip.
func (s *Store) Dashboard(ctx context.Context, orgID string) (Dashboard, error) {
	var d Dashboard
	err := s.DB.QueryRow(ctx, `
    SELECT
      (SELECT COUNT(1) FROM employees WHERE organization_id = $1),
      (SELECT COUNT(1) FROM human_resources WHERE organization_id = $1),
      (SELECT COUNT(1) FROM departments WHERE organization_id = $1),
      (SELECT COUNT(1) FROM leaves WHERE organization_id = $1 AND status = 'Pending'),
      (SELECT COUNT(1) FROM generate_requests WHERE organization_id = $1 AND status = 'Pending'),
      (SELECT COUNT(1) FROM salaries WHERE organization_id = $1 AND status <> 'Paid'),
      (SELECT COUNT(1) FROM notices WHERE organization_id = $1),
      (SELECT COUNT(1) FROM applicants WHERE organization_id = $1),
      (SELECT COUNT(1) FROM interview_insights WHERE organization_id = $1 AND status = 'Pending'),
      (SELECT COUNT(1) FROM schedules WHERE organization_id = $1 AND status = 'scheduled' AND date >= CURRENT_DATE),
      (SELECT COUNT(1) FROM attendances WHERE organization_id = $1 AND date = CURRENT_DATE
         AND status IN ('Present', 'Late', 'Half-Day'))
  `, orgID).Scan(
		&d.Employees, &d.HumanResources, &d.Departments, &d.PendingLeaves, &d.PendingRequests,
		&d.PendingSalaries, &d.Notices, &d.Applicants, &d.OpenInterviews, &d.UpcomingSchedules,
		&d.PresentToday,
	)
	if err != nil {
		return Dashboard{}, db.MapError(err)
	}
	return d, nil
}
