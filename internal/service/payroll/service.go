package payroll

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/domain/payroll"
)

var twelve = decimal.NewFromInt(12)

type Service struct {
	employees employee.Repository
	now       func() time.Time
}

func NewService(employees employee.Repository) *Service {
	return &Service{employees: employees, now: time.Now}
}

// Monthly converts an annual salary to the monthly figure shown on the
// payroll screen, rounded to two decimal places.
func Monthly(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(twelve).Round(2)
}

// Summary lists every non-terminated employee with annual and monthly
// amounts plus company-wide totals.
func (s *Service) Summary(ctx context.Context) (payroll.Summary, error) {
	emps, err := s.employees.List(ctx)
	if err != nil {
		return payroll.Summary{}, err
	}

	out := payroll.Summary{
		Entries:        []payroll.Entry{},
		MonthlyTotal:   decimal.Zero,
		AnnualTotal:    decimal.Zero,
		AverageMonthly: decimal.Zero,
	}
	for _, emp := range emps {
		if emp.Status == employee.StatusTerminated {
			continue
		}
		monthly := Monthly(emp.Salary)
		out.Entries = append(out.Entries, payroll.Entry{
			EmployeeID:    emp.ID,
			Name:          emp.Name,
			JobTitle:      emp.JobTitle,
			Department:    emp.Department,
			AnnualSalary:  emp.Salary,
			MonthlySalary: monthly,
		})
		out.AnnualTotal = out.AnnualTotal.Add(emp.Salary)
		out.MonthlyTotal = out.MonthlyTotal.Add(monthly)
	}
	out.EmployeeCount = len(out.Entries)
	if out.EmployeeCount > 0 {
		out.AverageMonthly = out.MonthlyTotal.Div(decimal.NewFromInt(int64(out.EmployeeCount))).Round(2)
	}
	return out, nil
}

// Entry returns the payroll row for a single employee.
func (s *Service) Entry(ctx context.Context, employeeID string) (payroll.Entry, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.Entry{}, err
	}
	return payroll.Entry{
		EmployeeID:    emp.ID,
		Name:          emp.Name,
		JobTitle:      emp.JobTitle,
		Department:    emp.Department,
		AnnualSalary:  emp.Salary,
		MonthlySalary: Monthly(emp.Salary),
	}, nil
}

// GeneratePayslipPDF renders a simple payslip for the employee's current
// month and returns the PDF bytes.
func (s *Service) GeneratePayslipPDF(ctx context.Context, employeeID string) ([]byte, string, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, "", err
	}

	period := s.now().Format("January 2006")
	monthly := Monthly(emp.Salary)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", emp.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", emp.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Position: %s, %s", emp.JobTitle, emp.Department))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", period))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Annual salary: %s", emp.Salary.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Monthly pay: %s", monthly.StringFixed(2)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render payslip: %w", err)
	}

	filename := fmt.Sprintf("payslip-%s-%s.pdf", emp.ID, s.now().Format("2006-01"))
	return buf.Bytes(), filename, nil
}
