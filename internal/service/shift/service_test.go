package shift

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/domain/shift"
	"github.com/zenhr/zenhr-backend-go/internal/repository/memstore"
	"github.com/zenhr/zenhr-backend-go/internal/state"
)

func newTestService(t *testing.T) (*Service, *state.Store) {
	t.Helper()
	store := state.NewStore()
	store.Hydrate(state.Document{Employees: []employee.Employee{
		{ID: "e1", Name: "Test Employee", Email: "e1@zenhr.test"},
	}})
	return NewService(memstore.NewShiftRepository(store), memstore.NewEmployeeRepository(store)), store
}

func TestAssignDerivesHours(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	cases := []struct {
		shiftType  string
		start, end string
	}{
		{"Full Day", "09:00", "18:00"},
		{"Half Day", "09:00", "13:00"},
		{"Leave", "Rest", "Day"},
		{"Off", "-", "-"},
	}
	for _, tc := range cases {
		t.Run(tc.shiftType, func(t *testing.T) {
			resp, err := svc.Assign(ctx, shift.AssignRequest{
				EmployeeID: "e1",
				Date:       "2024-06-17",
				Type:       tc.shiftType,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.start, resp.StartTime)
			assert.Equal(t, tc.end, resp.EndTime)
		})
	}
}

func TestAssignUpsertsPerEmployeeAndDate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	first, err := svc.Assign(ctx, shift.AssignRequest{
		EmployeeID: "e1", Date: "2024-06-17", Type: "Full Day",
	})
	require.NoError(t, err)

	second, err := svc.Assign(ctx, shift.AssignRequest{
		EmployeeID: "e1", Date: "2024-06-17", Type: "Half Day",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID, "reassignment replaces the record")

	shifts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, shift.TypeHalfDay, shifts[0].Type)

	// A different date for the same employee is a separate record.
	_, err = svc.Assign(ctx, shift.AssignRequest{
		EmployeeID: "e1", Date: "2024-06-18", Type: "Full Day",
	})
	require.NoError(t, err)

	shifts, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, shifts, 2)
}

func TestAssignValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Assign(ctx, shift.AssignRequest{
		EmployeeID: "e1", Date: "2024-06-17", Type: "Night",
	})
	assert.Error(t, err, "unknown shift type is rejected")

	_, err = svc.Assign(ctx, shift.AssignRequest{
		EmployeeID: "missing", Date: "2024-06-17", Type: "Full Day",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
