package payroll

import "github.com/shopspring/decimal"

// Entry is one employee's row on the payroll screen. Amounts are derived
// from the annual salary on the employee record; nothing payroll-specific
// is stored.
type Entry struct {
	EmployeeID    string          `json:"employeeId"`
	Name          string          `json:"name"`
	JobTitle      string          `json:"role"`
	Department    string          `json:"department"`
	AnnualSalary  decimal.Decimal `json:"annualSalary"`
	MonthlySalary decimal.Decimal `json:"monthlySalary"`
}

type Summary struct {
	Entries        []Entry         `json:"entries"`
	MonthlyTotal   decimal.Decimal `json:"monthlyTotal"`
	AnnualTotal    decimal.Decimal `json:"annualTotal"`
	EmployeeCount  int             `json:"employeeCount"`
	AverageMonthly decimal.Decimal `json:"averageMonthly"`
}
