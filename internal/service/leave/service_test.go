package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/domain/leave"
	"github.com/zenhr/zenhr-backend-go/internal/repository/memstore"
	"github.com/zenhr/zenhr-backend-go/internal/state"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, emps []employee.Employee, policies []leave.Policy) (*Service, *state.Store) {
	t.Helper()
	store := state.NewStore()
	store.Hydrate(state.Document{Employees: emps, Policies: policies})

	svc := NewService(
		memstore.NewLeaveRequestRepository(store),
		memstore.NewLeavePolicyRepository(store),
		memstore.NewEmployeeRepository(store),
	)
	svc.now = func() time.Time { return testNow }
	return svc, store
}

func testEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:           id,
		Name:         "Test Employee",
		Email:        id + "@zenhr.test",
		JobTitle:     "Engineer",
		Department:   "Engineering",
		Status:       employee.StatusActive,
		AccessRole:   employee.RoleEmployee,
		JoinDate:     "2022-01-01",
		LeaveAllowed: employee.LeaveCounters{Vacation: 20, Sick: 10, Personal: 5},
	}
}

func vacationPolicy(id string) leave.Policy {
	return leave.Policy{
		ID:                id,
		Name:              "Standard Vacation",
		Category:          leave.CategoryVacation,
		AnnualQuota:       20,
		MaxCarryForward:   5,
		MaxDaysPerRequest: 14,
		ApplicableRoles: []employee.AccessRole{
			employee.RoleAdmin, employee.RoleHR, employee.RoleEmployee,
		},
	}
}

func TestDaysCount(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 1, DaysCount(day(10), day(10)), "single day is inclusive")
	assert.Equal(t, 3, DaysCount(day(10), day(12)))
	assert.Equal(t, 0, DaysCount(day(12), day(10)), "inverted range counts as zero")
}

func TestResolvePolicy(t *testing.T) {
	emp := testEmployee("e1")

	t.Run("department match beats global", func(t *testing.T) {
		global := vacationPolicy("global")
		scoped := vacationPolicy("scoped")
		scoped.ApplicableDepartments = []string{"Engineering"}

		got := ResolvePolicy(emp, leave.CategoryVacation, []leave.Policy{global, scoped})
		require.NotNil(t, got)
		assert.Equal(t, "scoped", got.ID)
	})

	t.Run("global fallback when department differs", func(t *testing.T) {
		global := vacationPolicy("global")
		other := vacationPolicy("other")
		other.ApplicableDepartments = []string{"Sales"}

		got := ResolvePolicy(emp, leave.CategoryVacation, []leave.Policy{other, global})
		require.NotNil(t, got)
		assert.Equal(t, "global", got.ID)
	})

	t.Run("role-only fallback ignores departments", func(t *testing.T) {
		// Only a Sales-scoped policy exists for the role, so the last pass
		// picks it even though the department does not match.
		only := vacationPolicy("sales-only")
		only.ApplicableDepartments = []string{"Sales"}

		got := ResolvePolicy(emp, leave.CategoryVacation, []leave.Policy{only})
		require.NotNil(t, got)
		assert.Equal(t, "sales-only", got.ID)
	})

	t.Run("nil when no role matches", func(t *testing.T) {
		adminOnly := vacationPolicy("admin-only")
		adminOnly.ApplicableRoles = []employee.AccessRole{employee.RoleAdmin}

		got := ResolvePolicy(emp, leave.CategoryVacation, []leave.Policy{adminOnly})
		assert.Nil(t, got)
	})

	t.Run("category is filtered first", func(t *testing.T) {
		sick := vacationPolicy("sick")
		sick.Category = leave.CategorySick

		got := ResolvePolicy(emp, leave.CategoryVacation, []leave.Policy{sick})
		assert.Nil(t, got)
	})
}

func TestSubmitValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("inverted range is blocked", func(t *testing.T) {
		svc, _ := newTestService(t, []employee.Employee{testEmployee("e1")}, nil)
		_, err := svc.Submit(ctx, "e1", leave.CreateRequestRequest{
			Type:      "Vacation",
			StartDate: "2024-07-10",
			EndDate:   "2024-07-08",
		})
		assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
	})

	t.Run("probation blocks a new joiner", func(t *testing.T) {
		emp := testEmployee("e1")
		emp.JoinDate = testNow.AddDate(0, 0, -30).Format("2006-01-02")
		policy := vacationPolicy("p1")
		policy.ProbationPeriodDays = 90

		svc, _ := newTestService(t, []employee.Employee{emp}, []leave.Policy{policy})
		_, err := svc.Submit(ctx, "e1", leave.CreateRequestRequest{
			Type:      "Vacation",
			StartDate: "2024-07-01",
			EndDate:   "2024-07-03",
		})
		assert.ErrorIs(t, err, leave.ErrInProbation)
	})

	t.Run("probation passes after tenure", func(t *testing.T) {
		emp := testEmployee("e1")
		emp.JoinDate = testNow.AddDate(0, 0, -120).Format("2006-01-02")
		policy := vacationPolicy("p1")
		policy.ProbationPeriodDays = 90

		svc, _ := newTestService(t, []employee.Employee{emp}, []leave.Policy{policy})
		_, err := svc.Submit(ctx, "e1", leave.CreateRequestRequest{
			Type:      "Vacation",
			StartDate: "2024-07-01",
			EndDate:   "2024-07-03",
		})
		assert.NoError(t, err)
	})

	t.Run("no policy means no probation check", func(t *testing.T) {
		emp := testEmployee("e1")
		emp.JoinDate = testNow.AddDate(0, 0, -5).Format("2006-01-02")

		svc, _ := newTestService(t, []employee.Employee{emp}, nil)
		_, err := svc.Submit(ctx, "e1", leave.CreateRequestRequest{
			Type:      "Vacation",
			StartDate: "2024-07-01",
			EndDate:   "2024-07-03",
		})
		assert.NoError(t, err)
	})

	t.Run("per-request cap applies only with a policy", func(t *testing.T) {
		policy := vacationPolicy("p1")
		policy.MaxDaysPerRequest = 5

		svc, _ := newTestService(t, []employee.Employee{testEmployee("e1")}, []leave.Policy{policy})
		_, err := svc.Submit(ctx, "e1", leave.CreateRequestRequest{
			Type:      "Vacation",
			StartDate: "2024-07-01",
			EndDate:   "2024-07-10",
		})
		assert.ErrorIs(t, err, leave.ErrExceedsMaxDays)
	})

	t.Run("balance is checked even without a policy", func(t *testing.T) {
		emp := testEmployee("e1")
		emp.LeaveUsed.Vacation = 18 // 2 remaining

		svc, _ := newTestService(t, []employee.Employee{emp}, nil)
		_, err := svc.Submit(ctx, "e1", leave.CreateRequestRequest{
			Type:      "Vacation",
			StartDate: "2024-07-01",
			EndDate:   "2024-07-03", // 3 days
		})
		assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
	})

	t.Run("successful submit is pending and precomputes days", func(t *testing.T) {
		svc, _ := newTestService(t, []employee.Employee{testEmployee("e1")}, nil)
		resp, err := svc.Submit(ctx, "e1", leave.CreateRequestRequest{
			Type:      "Vacation",
			StartDate: "2024-07-01",
			EndDate:   "2024-07-05",
			Reason:    "Family trip",
		})
		require.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, 5, resp.DaysCount)
	})
}

func TestApproveAndReject(t *testing.T) {
	ctx := context.Background()

	submit := func(t *testing.T, svc *Service) leave.RequestResponse {
		resp, err := svc.Submit(ctx, "e1", leave.CreateRequestRequest{
			Type:      "Vacation",
			StartDate: "2024-07-01",
			EndDate:   "2024-07-03",
		})
		require.NoError(t, err)
		return resp
	}

	t.Run("approve charges the used counter", func(t *testing.T) {
		svc, _ := newTestService(t, []employee.Employee{testEmployee("e1")}, nil)
		req := submit(t, svc)

		approved, err := svc.Approve(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, approved.Status)

		balance, err := svc.Balance(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, 3, balance.Vacation.Used)
		assert.Equal(t, 17, balance.Vacation.Remaining)
	})

	t.Run("reject leaves counters untouched", func(t *testing.T) {
		svc, _ := newTestService(t, []employee.Employee{testEmployee("e1")}, nil)
		req := submit(t, svc)

		rejected, err := svc.Reject(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, rejected.Status)

		balance, err := svc.Balance(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, 0, balance.Vacation.Used)
	})

	t.Run("processing is one-way", func(t *testing.T) {
		svc, _ := newTestService(t, []employee.Employee{testEmployee("e1")}, nil)
		req := submit(t, svc)

		_, err := svc.Approve(ctx, req.ID)
		require.NoError(t, err)

		_, err = svc.Reject(ctx, req.ID)
		assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
		_, err = svc.Approve(ctx, req.ID)
		assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
	})
}

func TestSyncQuotas(t *testing.T) {
	ctx := context.Background()

	emp := testEmployee("e1")
	emp.LeaveUsed.Vacation = 4
	emp.LeaveAllowed = employee.LeaveCounters{Vacation: 15, Sick: 8, Personal: 3}

	policy := vacationPolicy("p1")
	policy.AnnualQuota = 22

	svc, store := newTestService(t, []employee.Employee{emp}, []leave.Policy{policy})

	count, err := svc.SyncQuotas(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var synced employee.Employee
	store.Read(func(doc *state.Document) { synced = doc.Employees[0] })

	assert.Equal(t, 22, synced.LeaveAllowed.Vacation, "resolved category takes the quota")
	assert.Equal(t, 8, synced.LeaveAllowed.Sick, "unresolved categories keep their value")
	assert.Equal(t, 3, synced.LeaveAllowed.Personal)
	assert.Equal(t, 4, synced.LeaveUsed.Vacation, "used counters are never touched")
}

func TestSavePolicyDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, nil, nil)

	saved, err := svc.SavePolicy(ctx, leave.SavePolicyRequest{
		Name:            "Sick Leave",
		LeaveType:       "Sick",
		AnnualQuota:     10,
		ApplicableRoles: []string{"Employee"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID, "empty id means create")
	assert.Equal(t, 365, saved.MaxDaysPerRequest, "non-positive cap defaults to a year")
}
