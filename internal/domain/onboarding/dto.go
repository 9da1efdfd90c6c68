package onboarding

import "github.com/zenhr/zenhr-backend-go/internal/pkg/validator"

// PlanStep is one checklist item of a generated onboarding plan.
type PlanStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type GeneratePlanRequest struct {
	Role       string `json:"role"`
	Department string `json:"department"`
}

func (r GeneratePlanRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "Role is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "Department is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CompleteProfileRequest carries the payroll details a candidate fills in to
// finish onboarding.
type CompleteProfileRequest struct {
	Address          string  `json:"address"`
	Phone            string  `json:"phone"`
	TaxID            *string `json:"taxId"`
	EmergencyContact *string `json:"emergencyContact"`
	BankAccount      *string `json:"bankAccount"`
	DOB              *string `json:"dob"`
}
