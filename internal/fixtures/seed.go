package fixtures

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/zenhr/zenhr-backend-go/internal/domain/announcement"
	"github.com/zenhr/zenhr-backend-go/internal/domain/attendance"
	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/domain/leave"
	"github.com/zenhr/zenhr-backend-go/internal/domain/shift"
	"github.com/zenhr/zenhr-backend-go/internal/state"
)

func strPtr(s string) *string { return &s }

// SeedDocument builds the starter document used when no snapshot exists yet:
// three demo accounts, the standard vacation policy and a welcome
// announcement. Every account's password is "password".
func SeedDocument() (state.Document, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return state.Document{}, fmt.Errorf("hash seed password: %w", err)
	}

	return state.Document{
		Employees: []employee.Employee{
			{
				ID:           "1",
				Name:         "Sarah Chen",
				Email:        "sarah@admin.com",
				PasswordHash: string(hash),
				JobTitle:     "CEO",
				Department:   "Executive",
				Status:       employee.StatusActive,
				AccessRole:   employee.RoleAdmin,
				JoinDate:     "2022-01-01",
				Address:      "123 Tech Lane, SF",
				Phone:        "555-0101",
				Salary:       decimal.NewFromInt(150000),
				Documents:    []employee.Document{},
				LeaveAllowed: employee.LeaveCounters{Vacation: 25, Sick: 12, Personal: 5},
			},
			{
				ID:           "2",
				Name:         "Marcus Rodriguez",
				Email:        "marcus@hr.com",
				PasswordHash: string(hash),
				JobTitle:     "HR Manager",
				Department:   "Human Resources",
				ManagerID:    strPtr("1"),
				Status:       employee.StatusActive,
				AccessRole:   employee.RoleHR,
				JoinDate:     "2022-02-15",
				Address:      "456 Silicon Valley, CA",
				Phone:        "555-0102",
				Salary:       decimal.NewFromInt(95000),
				Documents:    []employee.Document{},
				LeaveUsed:    employee.LeaveCounters{Vacation: 2, Sick: 1},
				LeaveAllowed: employee.LeaveCounters{Vacation: 20, Sick: 10, Personal: 5},
			},
			{
				ID:           "3",
				Name:         "Aisha Gupta",
				Email:        "aisha@zenhr.com",
				PasswordHash: string(hash),
				JobTitle:     "Head of Product",
				Department:   "Product",
				ManagerID:    strPtr("1"),
				Status:       employee.StatusActive,
				AccessRole:   employee.RoleEmployee,
				JoinDate:     "2022-03-10",
				Address:      "789 Product Rd, NY",
				Phone:        "555-0103",
				Salary:       decimal.NewFromInt(125000),
				Documents:    []employee.Document{},
				LeaveUsed:    employee.LeaveCounters{Vacation: 5, Personal: 1},
				LeaveAllowed: employee.LeaveCounters{Vacation: 20, Sick: 10, Personal: 5},
			},
		},
		Attendance: []attendance.Record{},
		Leaves:     []leave.Request{},
		Shifts:     []shift.Shift{},
		Policies: []leave.Policy{
			{
				ID:                  "default-vacation",
				Name:                "Standard Vacation",
				Category:            leave.CategoryVacation,
				AnnualQuota:         20,
				MaxCarryForward:     5,
				ProbationPeriodDays: 90,
				MaxDaysPerRequest:   14,
				ApplicableRoles: []employee.AccessRole{
					employee.RoleAdmin,
					employee.RoleHR,
					employee.RoleEmployee,
				},
				ApplicableDepartments: []string{},
			},
		},
		Announcements: []announcement.Announcement{
			{
				ID:      "1",
				Title:   "Welcome to the Team",
				Content: "We are excited to have our new portal live!",
				Date:    "2023-10-20",
				Author:  "HR",
			},
		},
	}, nil
}
