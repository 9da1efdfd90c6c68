package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/zenhr/zenhr-backend-go/internal/domain/announcement"
	"github.com/zenhr/zenhr-backend-go/internal/domain/attendance"
	"github.com/zenhr/zenhr-backend-go/internal/domain/dashboard"
	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/domain/leave"
)

type Service struct {
	employees     employee.Repository
	attendance    attendance.Repository
	leaves        leave.RequestRepository
	announcements announcement.Repository
	now           func() time.Time
}

func NewService(
	employees employee.Repository,
	att attendance.Repository,
	leaves leave.RequestRepository,
	announcements announcement.Repository,
) *Service {
	return &Service{
		employees:     employees,
		attendance:    att,
		leaves:        leaves,
		announcements: announcements,
		now:           time.Now,
	}
}

// Stats aggregates the counters shown on the dashboard. Everything is
// computed from the live document on each call.
func (s *Service) Stats(ctx context.Context) (dashboard.Stats, error) {
	emps, err := s.employees.List(ctx)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("list employees: %w", err)
	}
	records, err := s.attendance.List(ctx)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("list attendance: %w", err)
	}
	requests, err := s.leaves.List(ctx)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("list leave requests: %w", err)
	}
	anns, err := s.announcements.List(ctx)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("list announcements: %w", err)
	}

	stats := dashboard.Stats{
		TotalEmployees:   len(emps),
		ByStatus:         map[string]int{},
		ByDepartment:     map[string]int{},
		OpenAnnouncement: len(anns),
	}
	for _, e := range emps {
		stats.ByStatus[string(e.Status)]++
		if e.Department != "" {
			stats.ByDepartment[e.Department]++
		}
	}

	today := s.now().Format("2006-01-02")
	present := map[string]bool{}
	for _, r := range records {
		if r.Date != today {
			continue
		}
		present[r.EmployeeID] = true
		if r.Open() && r.OnBreak() {
			stats.OnBreakNow++
		}
	}
	stats.PresentToday = len(present)

	for _, req := range requests {
		switch req.Status {
		case leave.StatusPending:
			stats.PendingLeaves++
		case leave.StatusApproved:
			// ISO dates compare lexicographically.
			if req.StartDate <= today && today <= req.EndDate {
				stats.OnLeaveToday++
			}
		}
	}
	return stats, nil
}
