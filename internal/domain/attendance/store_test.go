package attendance

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

func TestStoreRoundTripAndUpdate(t *testing.T) {
	pool := dbtest.Open(t)
	svc := NewService(NewStore(pool))
	ctx := context.Background()
	orgID := dbtest.Organization(t, pool, "att")
	empID := dbtest.Employee(t, pool, orgID, dbtest.UniqueEmail("att"))

	created, err := svc.Create(ctx, orgID, Attendance{
		EmployeeID:  empID,
		Date:        dates.New(2025, time.January, 6),
		Status:      enums.AttendancePresent,
		CheckInTime: "09:00",
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, orgID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.AttendancePresent, got.Status)
	assert.Equal(t, "09:00", got.CheckInTime)
	assert.Empty(t, got.CheckOutTime)

	time.Sleep(10 * time.Millisecond)
	updated, err := svc.Update(ctx, orgID, created.ID, func(a *Attendance) error {
		a.Status = enums.AttendanceAbsent
		a.CheckInTime = ""
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, enums.AttendanceAbsent, updated.Status)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestStoreOneRecordPerEmployeeDay(t *testing.T) {
	pool := dbtest.Open(t)
	svc := NewService(NewStore(pool))
	ctx := context.Background()
	orgID := dbtest.Organization(t, pool, "att-day")
	empID := dbtest.Employee(t, pool, orgID, dbtest.UniqueEmail("att-day"))
	day := dates.New(2025, time.February, 3)

	_, err := svc.Create(ctx, orgID, Attendance{EmployeeID: empID, Date: day})
	require.NoError(t, err)
	_, err = svc.Create(ctx, orgID, Attendance{EmployeeID: empID, Date: day})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestStoreRejectsForeignEmployee(t *testing.T) {
	pool := dbtest.Open(t)
	svc := NewService(NewStore(pool))
	orgA := dbtest.Organization(t, pool, "att-a")
	orgB := dbtest.Organization(t, pool, "att-b")
	empB := dbtest.Employee(t, pool, orgB, dbtest.UniqueEmail("att-b"))

	_, err := svc.Create(context.Background(), orgA, Attendance{EmployeeID: empB})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestStoreClockInOnce(t *testing.T) {
	pool := dbtest.Open(t)
	svc := NewService(NewStore(pool))
	ctx := context.Background()
	orgID := dbtest.Organization(t, pool, "att-clock")
	empID := dbtest.Employee(t, pool, orgID, dbtest.UniqueEmail("att-clock"))
	svc.Now = func() time.Time { return time.Date(2025, 4, 1, 9, 15, 0, 0, time.UTC) }

	in, err := svc.ClockIn(ctx, orgID, empID)
	require.NoError(t, err)
	assert.Equal(t, "09:15", in.CheckInTime)

	_, err = svc.ClockIn(ctx, orgID, empID)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	svc.Now = func() time.Time { return time.Date(2025, 4, 1, 17, 15, 0, 0, time.UTC) }
	out, err := svc.ClockOut(ctx, orgID, empID)
	require.NoError(t, err)
	assert.Equal(t, 8.0, out.WorkHours)
}

func TestStoreClockInOverAbsentDay(t *testing.T) {
	pool := dbtest.Open(t)
	svc := NewService(NewStore(pool))
	ctx := context.Background()
	orgID := dbtest.Organization(t, pool, "att-absent")
	empID := dbtest.Employee(t, pool, orgID, dbtest.UniqueEmail("att-absent"))
	svc.Now = func() time.Time { return time.Date(2025, 4, 2, 10, 5, 0, 0, time.UTC) }

	_, err := svc.Create(ctx, orgID, Attendance{
		EmployeeID: empID,
		Date:       dates.New(2025, time.April, 2),
		Status:     enums.AttendanceAbsent,
	})
	require.NoError(t, err)

	in, err := svc.ClockIn(ctx, orgID, empID)
	require.NoError(t, err)
	assert.Equal(t, enums.AttendancePresent, in.Status)
	assert.Equal(t, "10:05", in.CheckInTime)
}
