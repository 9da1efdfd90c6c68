package leave

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/domain/leave"
)

// Service carries the leave workflows: request submission with policy
// validation, one-way approval, policy CRUD and the bulk quota sync.
type Service struct {
	leave.RequestRepository
	leave.PolicyRepository
	employees employee.Repository
	now       func() time.Time
}

func NewService(requests leave.RequestRepository, policies leave.PolicyRepository, employees employee.Repository) *Service {
	return &Service{
		RequestRepository: requests,
		PolicyRepository:  policies,
		employees:         employees,
		now:               time.Now,
	}
}

// DaysCount is the inclusive day span of a request. A range ending before it
// starts counts as zero, which blocks submission.
func DaysCount(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	diff := end.Sub(start)
	return int(math.Ceil(diff.Hours()/24)) + 1
}

// tenureDays is the (rounded-up) number of days since joinDate.
func (s *Service) tenureDays(joinDate string) int {
	join, err := time.Parse("2006-01-02", joinDate)
	if err != nil {
		return 0
	}
	return int(math.Ceil(s.now().Sub(join).Hours() / 24))
}

// Submit validates and appends a Pending request. Checks run in a fixed
// order: date range, probation, per-request cap, balance. A rejection leaves
// no state behind.
func (s *Service) Submit(ctx context.Context, employeeID string, req leave.CreateRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("get requesting employee: %w", err)
	}

	category := leave.Category(req.Type)
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	days := DaysCount(start, end)
	if days <= 0 {
		return leave.RequestResponse{}, leave.ErrInvalidDateRange
	}

	policies, err := s.PolicyRepository.List(ctx)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("list policies: %w", err)
	}
	policy := ResolvePolicy(emp, category, policies)

	if policy != nil && policy.ProbationPeriodDays > 0 && s.tenureDays(emp.JoinDate) < policy.ProbationPeriodDays {
		return leave.RequestResponse{}, leave.ErrInProbation
	}
	if policy != nil && days > policy.MaxDaysPerRequest {
		return leave.RequestResponse{}, leave.ErrExceedsMaxDays
	}
	if days > RemainingBalance(emp, category) {
		return leave.RequestResponse{}, leave.ErrInsufficientBalance
	}

	created, err := s.RequestRepository.Create(ctx, leave.Request{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		Category:   category,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Status:     leave.StatusPending,
		Reason:     req.Reason,
		DaysCount:  days,
	})
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("create leave request: %w", err)
	}
	return s.toResponse(ctx, created), nil
}

// Approve moves a Pending request to Approved and charges the day count to
// the employee's used counter. There is no un-approve, and the balance is
// not re-validated here.
func (s *Service) Approve(ctx context.Context, requestID string) (leave.RequestResponse, error) {
	request, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrAlreadyProcessed
	}

	emp, err := s.employees.GetByID(ctx, request.EmployeeID)
	if err == nil {
		switch request.Category {
		case leave.CategoryVacation:
			emp.LeaveUsed.Vacation += request.DaysCount
		case leave.CategorySick:
			emp.LeaveUsed.Sick += request.DaysCount
		case leave.CategoryPersonal:
			emp.LeaveUsed.Personal += request.DaysCount
		}
		if err := s.employees.Update(ctx, emp); err != nil {
			return leave.RequestResponse{}, fmt.Errorf("charge leave balance: %w", err)
		}
	}

	request.Status = leave.StatusApproved
	if err := s.RequestRepository.Update(ctx, request); err != nil {
		return leave.RequestResponse{}, fmt.Errorf("update leave request: %w", err)
	}
	return s.toResponse(ctx, request), nil
}

// Reject moves a Pending request to Rejected. Counters are untouched.
func (s *Service) Reject(ctx context.Context, requestID string) (leave.RequestResponse, error) {
	request, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrAlreadyProcessed
	}

	request.Status = leave.StatusRejected
	if err := s.RequestRepository.Update(ctx, request); err != nil {
		return leave.RequestResponse{}, fmt.Errorf("update leave request: %w", err)
	}
	return s.toResponse(ctx, request), nil
}

// ListAll returns every request, newest first (manager view).
func (s *Service) ListAll(ctx context.Context) ([]leave.RequestResponse, error) {
	requests, err := s.RequestRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]leave.RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, s.toResponse(ctx, r))
	}
	return out, nil
}

// ListMine returns the requesting employee's own requests.
func (s *Service) ListMine(ctx context.Context, employeeID string) ([]leave.RequestResponse, error) {
	requests, err := s.RequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]leave.RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, s.toResponse(ctx, r))
	}
	return out, nil
}

// Balance returns the per-category usage breakdown for one employee.
func (s *Service) Balance(ctx context.Context, employeeID string) (leave.BalanceResponse, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}
	line := func(used, allowed int) leave.BalanceLine {
		return leave.BalanceLine{Used: used, Allowed: allowed, Remaining: allowed - used}
	}
	return leave.BalanceResponse{
		Vacation: line(emp.LeaveUsed.Vacation, emp.LeaveAllowed.Vacation),
		Sick:     line(emp.LeaveUsed.Sick, emp.LeaveAllowed.Sick),
		Personal: line(emp.LeaveUsed.Personal, emp.LeaveAllowed.Personal),
	}, nil
}

// SavePolicy upserts a policy. An empty id means create.
func (s *Service) SavePolicy(ctx context.Context, req leave.SavePolicyRequest) (leave.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.PolicyResponse{}, err
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	roles := make([]employee.AccessRole, 0, len(req.ApplicableRoles))
	for _, r := range req.ApplicableRoles {
		roles = append(roles, employee.AccessRole(r))
	}
	maxDays := req.MaxDaysPerRequest
	if maxDays <= 0 {
		maxDays = 365
	}

	saved, err := s.PolicyRepository.Save(ctx, leave.Policy{
		ID:                    id,
		Name:                  req.Name,
		Category:              leave.Category(req.LeaveType),
		AnnualQuota:           req.AnnualQuota,
		MaxCarryForward:       req.MaxCarryForward,
		ProbationPeriodDays:   req.ProbationPeriodDays,
		MaxDaysPerRequest:     maxDays,
		ApplicableRoles:       roles,
		ApplicableDepartments: req.ApplicableDepartments,
	})
	if err != nil {
		return leave.PolicyResponse{}, fmt.Errorf("save policy: %w", err)
	}
	return leave.ToPolicyResponse(saved), nil
}

func (s *Service) ListPolicies(ctx context.Context) ([]leave.PolicyResponse, error) {
	policies, err := s.PolicyRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]leave.PolicyResponse, 0, len(policies))
	for _, p := range policies {
		out = append(out, leave.ToPolicyResponse(p))
	}
	return out, nil
}

func (s *Service) DeletePolicy(ctx context.Context, id string) error {
	return s.PolicyRepository.Delete(ctx, id)
}

// SyncQuotas recomputes every employee's allowed counters from the governing
// policies. Categories with no resolvable policy keep their current allowed
// value; used counters are never touched.
func (s *Service) SyncQuotas(ctx context.Context) (int, error) {
	policies, err := s.PolicyRepository.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list policies: %w", err)
	}
	emps, err := s.employees.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list employees: %w", err)
	}

	for i := range emps {
		if p := ResolvePolicy(emps[i], leave.CategoryVacation, policies); p != nil {
			emps[i].LeaveAllowed.Vacation = p.AnnualQuota
		}
		if p := ResolvePolicy(emps[i], leave.CategorySick, policies); p != nil {
			emps[i].LeaveAllowed.Sick = p.AnnualQuota
		}
		if p := ResolvePolicy(emps[i], leave.CategoryPersonal, policies); p != nil {
			emps[i].LeaveAllowed.Personal = p.AnnualQuota
		}
	}

	if err := s.employees.UpdateAll(ctx, emps); err != nil {
		return 0, fmt.Errorf("update employees: %w", err)
	}
	return len(emps), nil
}

func (s *Service) toResponse(ctx context.Context, r leave.Request) leave.RequestResponse {
	resp := leave.RequestResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Type:       r.Category,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Status:     r.Status,
		Reason:     r.Reason,
		DaysCount:  r.DaysCount,
	}
	if emp, err := s.employees.GetByID(ctx, r.EmployeeID); err == nil {
		resp.EmployeeName = emp.Name
	}
	return resp
}
