package leave

import (
	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/domain/leave"
)

// ResolvePolicy picks the single governing policy for an employee and a
// category. Specificity first, and the order matters:
//
//  1. role and department both match
//  2. role matches and the policy has no department restriction
//  3. first remaining policy (original order) whose roles match, department
//     ignored entirely
//
// nil means the category has no governing policy: no probation check, no
// per-request cap, and the employee's counters are used as-is.
func ResolvePolicy(emp employee.Employee, category leave.Category, policies []leave.Policy) *leave.Policy {
	var candidates []leave.Policy
	for _, p := range policies {
		if p.Category == category {
			candidates = append(candidates, p)
		}
	}

	for i := range candidates {
		p := candidates[i]
		if p.AppliesToRole(emp.AccessRole) && p.AppliesToDepartment(emp.Department) {
			return &candidates[i]
		}
	}

	for i := range candidates {
		p := candidates[i]
		if p.AppliesToRole(emp.AccessRole) && p.IsGlobal() {
			return &candidates[i]
		}
	}

	for i := range candidates {
		if candidates[i].AppliesToRole(emp.AccessRole) {
			return &candidates[i]
		}
	}

	return nil
}

// RemainingBalance returns allowed minus used for a category.
func RemainingBalance(emp employee.Employee, category leave.Category) int {
	switch category {
	case leave.CategoryVacation:
		return emp.LeaveAllowed.Vacation - emp.LeaveUsed.Vacation
	case leave.CategorySick:
		return emp.LeaveAllowed.Sick - emp.LeaveUsed.Sick
	case leave.CategoryPersonal:
		return emp.LeaveAllowed.Personal - emp.LeaveUsed.Personal
	default:
		return 0
	}
}
