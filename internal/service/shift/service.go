package shift

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/domain/shift"
)

type Service struct {
	shift.Repository
	employees employee.Repository
}

func NewService(shifts shift.Repository, employees employee.Repository) *Service {
	return &Service{Repository: shifts, employees: employees}
}

// Assign upserts the shift for (employee, date). The start/end labels come
// from the type tag, never from the caller.
func (s *Service) Assign(ctx context.Context, req shift.AssignRequest) (shift.Response, error) {
	if err := req.Validate(); err != nil {
		return shift.Response{}, err
	}
	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return shift.Response{}, fmt.Errorf("get employee: %w", err)
	}

	shiftType := shift.Type(req.Type)
	start, end := shiftType.Hours()

	saved, err := s.Repository.Upsert(ctx, shift.Shift{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Type:       shiftType,
		StartTime:  start,
		EndTime:    end,
	})
	if err != nil {
		return shift.Response{}, fmt.Errorf("upsert shift: %w", err)
	}
	return shift.ToResponse(saved), nil
}

func (s *Service) List(ctx context.Context) ([]shift.Response, error) {
	shifts, err := s.Repository.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]shift.Response, 0, len(shifts))
	for _, sh := range shifts {
		out = append(out, shift.ToResponse(sh))
	}
	return out, nil
}

func (s *Service) ListMine(ctx context.Context, employeeID string) ([]shift.Response, error) {
	shifts, err := s.Repository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]shift.Response, 0, len(shifts))
	for _, sh := range shifts {
		out = append(out, shift.ToResponse(sh))
	}
	return out, nil
}

func (s *Service) Remove(ctx context.Context, id string) error {
	return s.Repository.Delete(ctx, id)
}
