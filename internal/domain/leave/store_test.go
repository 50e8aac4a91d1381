package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/dates"
	"hrms/internal/domain/enums"
	"hrms/internal/platform/db/dbtest"
)

func TestStoreLeaveLifecycle(t *testing.T) {
	pool := dbtest.Open(t)
	svc := NewService(NewStore(pool))
	ctx := context.Background()
	orgID := dbtest.Organization(t, pool, "leave")
	empID := dbtest.Employee(t, pool, orgID, dbtest.UniqueEmail("leave-emp"))
	hrID := dbtest.HR(t, pool, orgID, dbtest.UniqueEmail("leave-hr"))

	l, err := svc.Apply(ctx, orgID, empID, Leave{
		StartDate: dates.New(2025, time.July, 1),
		EndDate:   dates.New(2025, time.July, 3),
		Reason:    "wedding",
	})
	require.NoError(t, err)
	assert.Equal(t, enums.LeavePending, l.Status)
	assert.Equal(t, DefaultTitle, l.Title)

	decided, err := svc.Decide(ctx, orgID, l.ID, hrID, enums.LeaveApproved)
	require.NoError(t, err)
	assert.Equal(t, hrID, decided.ApprovedByID)

	list, err := svc.List(ctx, orgID, Filter{EmployeeID: empID, Status: enums.LeaveApproved})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].Days)
}

func TestStoreLeaveForeignApprover(t *testing.T) {
	pool := dbtest.Open(t)
	svc := NewService(NewStore(pool))
	ctx := context.Background()
	orgA := dbtest.Organization(t, pool, "leave-a")
	orgB := dbtest.Organization(t, pool, "leave-b")
	empID := dbtest.Employee(t, pool, orgA, dbtest.UniqueEmail("leave-a"))
	foreignHR := dbtest.HR(t, pool, orgB, dbtest.UniqueEmail("leave-b"))

	l, err := svc.Apply(ctx, orgA, empID, Leave{
		StartDate: dates.New(2025, time.August, 1),
		EndDate:   dates.New(2025, time.August, 1),
		Reason:    "appointment",
	})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, orgA, l.ID, foreignHR, enums.LeaveApproved)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
