package leave

import (
	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
)

// Category is one of the independent quota tracks per employee.
type Category string

const (
	CategoryVacation Category = "Vacation"
	CategorySick     Category = "Sick"
	CategoryPersonal Category = "Personal"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryVacation, CategorySick, CategoryPersonal:
		return true
	}
	return false
}

type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
)

// Request is a leave request for an inclusive date range. DaysCount is
// precomputed at submission and never recalculated afterwards.
type Request struct {
	ID         string        `json:"id"`
	EmployeeID string        `json:"employeeId"`
	Category   Category      `json:"type"`
	StartDate  string        `json:"startDate"` // YYYY-MM-DD
	EndDate    string        `json:"endDate"`   // YYYY-MM-DD, inclusive
	Status     RequestStatus `json:"status"`
	Reason     string        `json:"reason"`
	DaysCount  int           `json:"daysCount"`
}

// Policy is a named rule set for one leave category. An empty department set
// means the policy applies globally across departments.
type Policy struct {
	ID                    string                `json:"id"`
	Name                  string                `json:"name"`
	Category              Category              `json:"leaveType"`
	AnnualQuota           int                   `json:"annualQuota"`
	MaxCarryForward       int                   `json:"maxCarryForward"`
	ProbationPeriodDays   int                   `json:"probationPeriodDays"`
	MaxDaysPerRequest     int                   `json:"maxDaysPerRequest"`
	ApplicableRoles       []employee.AccessRole `json:"applicableRoles"`
	ApplicableDepartments []string              `json:"applicableDepartments"`
}

// AppliesToRole reports whether the policy's role set contains role.
func (p Policy) AppliesToRole(role employee.AccessRole) bool {
	for _, r := range p.ApplicableRoles {
		if r == role {
			return true
		}
	}
	return false
}

// AppliesToDepartment reports whether the policy's department set contains dept.
func (p Policy) AppliesToDepartment(dept string) bool {
	for _, d := range p.ApplicableDepartments {
		if d == dept {
			return true
		}
	}
	return false
}

// IsGlobal reports whether the policy has no department restriction.
func (p Policy) IsGlobal() bool {
	return len(p.ApplicableDepartments) == 0
}
