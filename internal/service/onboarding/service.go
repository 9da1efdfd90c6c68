package onboarding

import (
	"context"
	"fmt"

	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/domain/onboarding"
)

type Service struct {
	employees employee.Repository
}

func NewService(employees employee.Repository) *Service {
	return &Service{employees: employees}
}

// GeneratePlan returns the onboarding checklist for a role. The generator is
// a static stub: the same five steps every time, with the role and
// department interpolated into the first one.
func (s *Service) GeneratePlan(ctx context.Context, req onboarding.GeneratePlanRequest) ([]onboarding.PlanStep, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return []onboarding.PlanStep{
		{
			Title:       "Initial Setup",
			Description: fmt.Sprintf("Set up email, workstations, and access for the new %s in %s.", req.Role, req.Department),
		},
		{
			Title:       "Team Introduction",
			Description: "Meet the immediate team members and manager.",
		},
		{
			Title:       "HR Orientation",
			Description: "Attend HR orientation session and complete paperwork.",
		},
		{
			Title:       "Training",
			Description: "Complete required training modules for your role.",
		},
		{
			Title:       "First Assignment",
			Description: "Start on your first project or assignment with your team.",
		},
	}, nil
}

// CompleteProfile fills in the candidate's payroll details and flips the
// status from Onboarding to Active.
func (s *Service) CompleteProfile(ctx context.Context, employeeID string, req onboarding.CompleteProfileRequest) (employee.Response, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Response{}, err
	}

	if req.Address != "" {
		emp.Address = req.Address
	}
	if req.Phone != "" {
		emp.Phone = req.Phone
	}
	if req.TaxID != nil {
		emp.TaxID = req.TaxID
	}
	if req.EmergencyContact != nil {
		emp.EmergencyContact = req.EmergencyContact
	}
	if req.BankAccount != nil {
		emp.BankAccount = req.BankAccount
	}
	if req.DOB != nil {
		emp.DOB = req.DOB
	}
	emp.Status = employee.StatusActive

	if err := s.employees.Update(ctx, emp); err != nil {
		return employee.Response{}, err
	}
	return employee.ToResponse(emp), nil
}
