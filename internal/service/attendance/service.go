package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zenhr/zenhr-backend-go/internal/domain/attendance"
	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
)

// Service drives the per-day session state machine:
// NoSession -> ClockedIn -> (OnBreak <-> ClockedIn) -> ClockedOut.
type Service struct {
	attendance.Repository
	employees employee.Repository
	now       func() time.Time
}

func NewService(records attendance.Repository, employees employee.Repository) *Service {
	return &Service{
		Repository: records,
		employees:  employees,
		now:        time.Now,
	}
}

// ClockIn opens a session for today. At most one open session may exist per
// (employee, day).
func (s *Service) ClockIn(ctx context.Context, employeeID string) (attendance.Response, error) {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return attendance.Response{}, fmt.Errorf("get employee: %w", err)
	}

	now := s.now()
	date := now.Format("2006-01-02")

	_, err := s.Repository.GetOpenSession(ctx, employeeID, date)
	if err == nil {
		return attendance.Response{}, attendance.ErrAlreadyClockedIn
	}
	if !errors.Is(err, attendance.ErrNoOpenSession) {
		return attendance.Response{}, fmt.Errorf("check open session: %w", err)
	}

	created, err := s.Repository.Create(ctx, attendance.Record{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       date,
		ClockIn:    now,
		Breaks:     []attendance.Break{},
		TotalHours: 0,
	})
	if err != nil {
		return attendance.Response{}, fmt.Errorf("create attendance record: %w", err)
	}
	return attendance.ToResponse(created), nil
}

// ToggleBreak opens a new break, or closes the most recently opened one.
// Only that latest break is ever considered open.
func (s *Service) ToggleBreak(ctx context.Context, employeeID string) (attendance.Response, error) {
	now := s.now()
	rec, err := s.Repository.GetOpenSession(ctx, employeeID, now.Format("2006-01-02"))
	if err != nil {
		return attendance.Response{}, err
	}

	if rec.OnBreak() {
		rec.Breaks[len(rec.Breaks)-1].End = &now
	} else {
		rec.Breaks = append(rec.Breaks, attendance.Break{Start: now})
	}

	if err := s.Repository.Update(ctx, rec); err != nil {
		return attendance.Response{}, fmt.Errorf("update attendance record: %w", err)
	}
	return attendance.ToResponse(rec), nil
}

// ClockOut closes the open session. Total hours are wall-clock seconds since
// clock-in divided by 3600; break time is NOT subtracted from the stored
// value, only surfaced separately for display.
func (s *Service) ClockOut(ctx context.Context, employeeID string) (attendance.Response, error) {
	now := s.now()
	rec, err := s.Repository.GetOpenSession(ctx, employeeID, now.Format("2006-01-02"))
	if err != nil {
		return attendance.Response{}, err
	}

	rec.ClockOut = &now
	rec.TotalHours = now.Sub(rec.ClockIn).Seconds() / 3600

	if err := s.Repository.Update(ctx, rec); err != nil {
		return attendance.Response{}, fmt.Errorf("update attendance record: %w", err)
	}
	return attendance.ToResponse(rec), nil
}

// OpenSession returns today's open session for an employee, if any, so the
// console can resume its ticking display after a reload.
func (s *Service) OpenSession(ctx context.Context, employeeID string) (*attendance.Response, error) {
	rec, err := s.Repository.GetOpenSession(ctx, employeeID, s.now().Format("2006-01-02"))
	if errors.Is(err, attendance.ErrNoOpenSession) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	resp := attendance.ToResponse(rec)
	return &resp, nil
}

// ListAll returns every record with display aggregation (manager view).
func (s *Service) ListAll(ctx context.Context) ([]attendance.Response, attendance.Summary, error) {
	records, err := s.Repository.List(ctx)
	if err != nil {
		return nil, attendance.Summary{}, err
	}
	return s.toResponses(ctx, records), attendance.Summarize(records), nil
}

// ListMine returns one employee's records with display aggregation.
func (s *Service) ListMine(ctx context.Context, employeeID string) ([]attendance.Response, attendance.Summary, error) {
	records, err := s.Repository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, attendance.Summary{}, err
	}
	return s.toResponses(ctx, records), attendance.Summarize(records), nil
}

func (s *Service) toResponses(ctx context.Context, records []attendance.Record) []attendance.Response {
	names := make(map[string]string)
	if emps, err := s.employees.List(ctx); err == nil {
		for _, e := range emps {
			names[e.ID] = e.Name
		}
	}
	out := make([]attendance.Response, 0, len(records))
	for _, r := range records {
		resp := attendance.ToResponse(r)
		resp.EmployeeName = names[r.EmployeeID]
		out = append(out, resp)
	}
	return out
}
