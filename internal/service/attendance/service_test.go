package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenhr/zenhr-backend-go/internal/domain/attendance"
	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/repository/memstore"
	"github.com/zenhr/zenhr-backend-go/internal/state"
)

func newTestService(t *testing.T) (*Service, *time.Time) {
	t.Helper()
	store := state.NewStore()
	store.Hydrate(state.Document{Employees: []employee.Employee{{
		ID:     "e1",
		Name:   "Test Employee",
		Email:  "e1@zenhr.test",
		Status: employee.StatusActive,
	}}})

	now := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	svc := NewService(memstore.NewAttendanceRepository(store), memstore.NewEmployeeRepository(store))
	svc.now = func() time.Time { return now }
	return svc, &now
}

func TestClockInOnce(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	rec, err := svc.ClockIn(ctx, "e1")
	require.NoError(t, err)
	assert.True(t, rec.Open)
	assert.Equal(t, "2024-06-15", rec.Date)

	_, err = svc.ClockIn(ctx, "e1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockInUnknownEmployee(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.ClockIn(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestBreakToggle(t *testing.T) {
	ctx := context.Background()
	svc, now := newTestService(t)

	_, err := svc.ToggleBreak(ctx, "e1")
	assert.ErrorIs(t, err, attendance.ErrNoOpenSession, "break needs an open session")

	_, err = svc.ClockIn(ctx, "e1")
	require.NoError(t, err)

	*now = now.Add(3 * time.Hour)
	rec, err := svc.ToggleBreak(ctx, "e1")
	require.NoError(t, err)
	assert.True(t, rec.OnBreak)

	*now = now.Add(30 * time.Minute)
	rec, err = svc.ToggleBreak(ctx, "e1")
	require.NoError(t, err)
	assert.False(t, rec.OnBreak)
	assert.Equal(t, 30, rec.BreakMinutes)
}

func TestClockOutIgnoresBreaks(t *testing.T) {
	ctx := context.Background()
	svc, now := newTestService(t)

	_, err := svc.ClockIn(ctx, "e1")
	require.NoError(t, err)

	// One hour of break inside an eight hour day.
	*now = now.Add(4 * time.Hour)
	_, err = svc.ToggleBreak(ctx, "e1")
	require.NoError(t, err)
	*now = now.Add(1 * time.Hour)
	_, err = svc.ToggleBreak(ctx, "e1")
	require.NoError(t, err)

	*now = now.Add(3 * time.Hour)
	rec, err := svc.ClockOut(ctx, "e1")
	require.NoError(t, err)

	// The stored total is wall-clock time; breaks only show up in the
	// separate display aggregation.
	assert.InDelta(t, 8.0, rec.TotalHours, 0.001)
	assert.Equal(t, 60, rec.BreakMinutes)
	assert.False(t, rec.Open)

	_, err = svc.ClockOut(ctx, "e1")
	assert.ErrorIs(t, err, attendance.ErrNoOpenSession)
}

func TestOpenSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	open, err := svc.OpenSession(ctx, "e1")
	require.NoError(t, err)
	assert.Nil(t, open, "no session yet")

	_, err = svc.ClockIn(ctx, "e1")
	require.NoError(t, err)

	open, err = svc.OpenSession(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.True(t, open.Open)
}

func TestSummarize(t *testing.T) {
	records := []attendance.Record{
		{Date: "2024-06-10", TotalHours: 8},
		{Date: "2024-06-11", TotalHours: 6},
		{Date: "2024-06-11", TotalHours: 2}, // same day, second session
	}
	s := attendance.Summarize(records)
	assert.Equal(t, 2, s.DaysPresent)
	assert.InDelta(t, 16.0, s.TotalHours, 0.001)
	assert.InDelta(t, 8.0, s.AverageHours, 0.001)
}
