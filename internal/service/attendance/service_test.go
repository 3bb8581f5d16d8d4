package attendance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officetrack/attendance-tracker-go/internal/domain/attendance"
	"github.com/officetrack/attendance-tracker-go/internal/domain/employee"
	"github.com/officetrack/attendance-tracker-go/internal/domain/master"
	"github.com/officetrack/attendance-tracker-go/internal/store"
)

func newTestService(t *testing.T) (attendance.AttendanceService, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemoryCache(), nil, nil)
	require.NoError(t, st.SetEmployees([]employee.Employee{
		{ID: "EMP001", Name: "John Smith", Location: "LDN", Role: "manager"},
		{ID: "EMP002", Name: "Sarah Johnson", Location: "LDN", Role: "manager"},
	}))
	return NewAttendanceService(st), st
}

func officeRequest(employeeID, date string) attendance.CreateRecordRequest {
	return attendance.CreateRecordRequest{
		EmployeeID: employeeID,
		Date:       date,
		Status:     "office",
	}
}

func TestCreateAssignsIDAndStoresCanonicalEmployeeID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, officeRequest("  emp001  ", "2026-02-20"))
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "EMP001", rec.EmployeeID)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestCreateUpsertsByEmployeeAndDate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, officeRequest("EMP001", "2026-02-20"))
	require.NoError(t, err)

	second := officeRequest("emp001", "2026-02-20")
	second.Status = "wfh"
	second.Note = "working from home"
	updated, err := svc.Create(ctx, second)
	require.NoError(t, err)

	// Same pair, so the record was overwritten, never duplicated.
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "wfh", updated.Status)
	assert.Equal(t, "working from home", updated.Note)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateRangeExpandsInclusive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	records, err := svc.CreateRange(ctx, attendance.CreateRangeRequest{
		EmployeeID: "EMP001",
		StartDate:  "2026-02-20",
		EndDate:    "2026-02-22",
		Status:     "business_trip",
		Note:       "Business trip to Tokyo",
	})
	require.NoError(t, err)
	require.Len(t, records, 3)

	dates := []string{records[0].Date, records[1].Date, records[2].Date}
	assert.Equal(t, []string{"2026-02-20", "2026-02-21", "2026-02-22"}, dates)
	for _, rec := range records {
		assert.Equal(t, "business_trip", rec.Status)
		assert.Equal(t, "Business trip to Tokyo", rec.Note)
	}
}

func TestCreateRangeIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := attendance.CreateRangeRequest{
		EmployeeID: "EMP001",
		StartDate:  "2026-02-20",
		EndDate:    "2026-02-22",
		Status:     "vacation",
	}
	_, err := svc.CreateRange(ctx, req)
	require.NoError(t, err)
	_, err = svc.CreateRange(ctx, req)
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCreateRangeRejectsReversedRange(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateRange(context.Background(), attendance.CreateRangeRequest{
		EmployeeID: "EMP001",
		StartDate:  "2026-02-22",
		EndDate:    "2026-02-20",
		Status:     "office",
	})
	assert.ErrorIs(t, err, attendance.ErrInvalidRange)
}

func TestQueriesByDateRangeAndEmployee(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, req := range []attendance.CreateRecordRequest{
		officeRequest("EMP001", "2026-02-19"),
		officeRequest("EMP001", "2026-02-20"),
		officeRequest("EMP002", "2026-02-20"),
		officeRequest("EMP002", "2026-03-01"),
	} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	byDate, err := svc.ByDate(ctx, "2026-02-20")
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	inRange, err := svc.ByDateRange(ctx, "2026-02-19", "2026-02-28")
	require.NoError(t, err)
	assert.Len(t, inRange, 3)

	byEmployee, err := svc.ByEmployee(ctx, "emp002")
	require.NoError(t, err)
	assert.Len(t, byEmployee, 2)

	pair, err := svc.ByEmployeeAndDate(ctx, " EMP001 ", "2026-02-19")
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.Equal(t, "2026-02-19", pair.Date)

	missing, err := svc.ByEmployeeAndDate(ctx, "EMP001", "2026-12-25")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateAndDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, officeRequest("EMP001", "2026-02-20"))
	require.NoError(t, err)

	status := "sick"
	note := "Sick leave"
	updated, err := svc.Update(ctx, rec.ID, attendance.UpdateRecordRequest{Status: &status, Note: &note})
	require.NoError(t, err)
	assert.Equal(t, "sick", updated.Status)
	require.NotNil(t, updated.UpdatedAt)

	require.NoError(t, svc.Delete(ctx, rec.ID))
	_, err = svc.GetByID(ctx, rec.ID)
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)

	err = svc.Delete(ctx, rec.ID)
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestStatistics(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	reqs := []attendance.CreateRecordRequest{
		officeRequest("EMP001", "2026-02-20"),
		officeRequest("EMP002", "2026-02-20"),
		{EmployeeID: "EMP001", Date: "2026-02-21", Status: "wfh"},
		{EmployeeID: "EMP001", Date: "2026-03-05", Status: "sick"},
	}
	for _, req := range reqs {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	stats, err := svc.Statistics(ctx, "2026-02-01", "2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByStatus["office"].Count)
	assert.Equal(t, "Office", stats.ByStatus["office"].Label)
	assert.Equal(t, "#4CAF50", stats.ByStatus["office"].Color)
	assert.Equal(t, 1, stats.ByStatus["wfh"].Count)
	assert.Len(t, stats.ByStatus, len(master.Statuses))

	// The March record falls outside the range; its status still gets a
	// zero bucket with the master labels filled in.
	assert.Equal(t, 0, stats.ByStatus["sick"].Count)
	assert.Equal(t, "Sick Leave", stats.ByStatus["sick"].Label)
	assert.Equal(t, "#607D8B", stats.ByStatus["sick"].Color)
}
