package payroll

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/repository/memstore"
	"github.com/zenhr/zenhr-backend-go/internal/state"
)

func newTestService(t *testing.T, emps []employee.Employee) *Service {
	t.Helper()
	store := state.NewStore()
	store.Hydrate(state.Document{Employees: emps})
	return NewService(memstore.NewEmployeeRepository(store))
}

func TestMonthly(t *testing.T) {
	assert.Equal(t, "12500", Monthly(decimal.NewFromInt(150000)).String())
	assert.Equal(t, "7916.67", Monthly(decimal.NewFromInt(95000)).String())
	assert.Equal(t, "0", Monthly(decimal.Zero).String())
}

func TestSummary(t *testing.T) {
	svc := newTestService(t, []employee.Employee{
		{ID: "1", Name: "A", Status: employee.StatusActive, Salary: decimal.NewFromInt(120000)},
		{ID: "2", Name: "B", Status: employee.StatusActive, Salary: decimal.NewFromInt(60000)},
		{ID: "3", Name: "C", Status: employee.StatusTerminated, Salary: decimal.NewFromInt(999999)},
	})

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.EmployeeCount, "terminated employees are excluded")
	assert.Equal(t, "180000", summary.AnnualTotal.String())
	assert.Equal(t, "15000", summary.MonthlyTotal.String())
	assert.Equal(t, "7500", summary.AverageMonthly.String())
}

func TestGeneratePayslipPDF(t *testing.T) {
	svc := newTestService(t, []employee.Employee{
		{ID: "1", Name: "A", Email: "a@zenhr.test", Status: employee.StatusActive, Salary: decimal.NewFromInt(120000)},
	})

	pdf, filename, err := svc.GeneratePayslipPDF(context.Background(), "1")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Contains(t, filename, "payslip-1-")
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestEntryUnknownEmployee(t *testing.T) {
	svc := newTestService(t, nil)
	_, err := svc.Entry(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
