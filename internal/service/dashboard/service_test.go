package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenhr/zenhr-backend-go/internal/domain/attendance"
	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/domain/leave"
	"github.com/zenhr/zenhr-backend-go/internal/repository/memstore"
	"github.com/zenhr/zenhr-backend-go/internal/state"
)

func TestStats(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	today := now.Format("2006-01-02")

	store := state.NewStore()
	store.Hydrate(state.Document{
		Employees: []employee.Employee{
			{ID: "1", Department: "Engineering", Status: employee.StatusActive},
			{ID: "2", Department: "Engineering", Status: employee.StatusActive},
			{ID: "3", Department: "Product", Status: employee.StatusOnboarding},
		},
		Attendance: []attendance.Record{
			{ID: "a1", EmployeeID: "1", Date: today, ClockIn: now},
			{ID: "a2", EmployeeID: "1", Date: today, ClockIn: now}, // second session, same person
			{ID: "a3", EmployeeID: "2", Date: "2024-06-14", ClockIn: now},
		},
		Leaves: []leave.Request{
			{ID: "l1", Status: leave.StatusPending},
			{ID: "l2", Status: leave.StatusApproved, StartDate: "2024-06-14", EndDate: "2024-06-16"},
			{ID: "l3", Status: leave.StatusApproved, StartDate: "2024-01-01", EndDate: "2024-01-05"},
			{ID: "l4", Status: leave.StatusRejected},
		},
	})

	svc := NewService(
		memstore.NewEmployeeRepository(store),
		memstore.NewAttendanceRepository(store),
		memstore.NewLeaveRequestRepository(store),
		memstore.NewAnnouncementRepository(store),
	)
	svc.now = func() time.Time { return now }

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalEmployees)
	assert.Equal(t, 2, stats.ByStatus["Active"])
	assert.Equal(t, 1, stats.ByStatus["Onboarding"])
	assert.Equal(t, 2, stats.ByDepartment["Engineering"])
	assert.Equal(t, 1, stats.PresentToday, "distinct employees, not records")
	assert.Equal(t, 1, stats.PendingLeaves)
	assert.Equal(t, 1, stats.OnLeaveToday, "only ranges covering today count")
}
