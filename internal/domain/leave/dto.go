package leave

import (
	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/pkg/validator"
)

type RequestResponse struct {
	ID           string        `json:"id"`
	EmployeeID   string        `json:"employeeId"`
	EmployeeName string        `json:"employeeName,omitempty"`
	Type         Category      `json:"type"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	Status       RequestStatus `json:"status"`
	Reason       string        `json:"reason"`
	DaysCount    int           `json:"daysCount"`
}

type PolicyResponse struct {
	ID                    string                `json:"id"`
	Name                  string                `json:"name"`
	LeaveType             Category              `json:"leaveType"`
	AnnualQuota           int                   `json:"annualQuota"`
	MaxCarryForward       int                   `json:"maxCarryForward"`
	ProbationPeriodDays   int                   `json:"probationPeriodDays"`
	MaxDaysPerRequest     int                   `json:"maxDaysPerRequest"`
	ApplicableRoles       []employee.AccessRole `json:"applicableRoles"`
	ApplicableDepartments []string              `json:"applicableDepartments"`
}

func ToPolicyResponse(p Policy) PolicyResponse {
	roles := p.ApplicableRoles
	if roles == nil {
		roles = []employee.AccessRole{}
	}
	depts := p.ApplicableDepartments
	if depts == nil {
		depts = []string{}
	}
	return PolicyResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		LeaveType:             p.Category,
		AnnualQuota:           p.AnnualQuota,
		MaxCarryForward:       p.MaxCarryForward,
		ProbationPeriodDays:   p.ProbationPeriodDays,
		MaxDaysPerRequest:     p.MaxDaysPerRequest,
		ApplicableRoles:       roles,
		ApplicableDepartments: depts,
	}
}

type CreateRequestRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

func (r CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors
	if !Category(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "Expected Vacation, Sick or Personal"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "Expected YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "Expected YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SavePolicyRequest struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	LeaveType             string   `json:"leaveType"`
	AnnualQuota           int      `json:"annualQuota"`
	MaxCarryForward       int      `json:"maxCarryForward"`
	ProbationPeriodDays   int      `json:"probationPeriodDays"`
	MaxDaysPerRequest     int      `json:"maxDaysPerRequest"`
	ApplicableRoles       []string `json:"applicableRoles"`
	ApplicableDepartments []string `json:"applicableDepartments"`
}

func (r SavePolicyRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Policy name is required"})
	}
	if !Category(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "Expected Vacation, Sick or Personal"})
	}
	if r.AnnualQuota < 0 {
		errs = append(errs, validator.ValidationError{Field: "annualQuota", Message: "Must not be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BalanceResponse is the remaining-balance breakdown shown next to the
// request form.
type BalanceResponse struct {
	Vacation BalanceLine `json:"vacation"`
	Sick     BalanceLine `json:"sick"`
	Personal BalanceLine `json:"personal"`
}

type BalanceLine struct {
	Used      int `json:"used"`
	Allowed   int `json:"allowed"`
	Remaining int `json:"remaining"`
}
