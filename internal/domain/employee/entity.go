package employee

import (
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	PasswordHash     string          `json:"passwordHash"`
	JobTitle         string          `json:"role"`
	Department       string          `json:"department"`
	ManagerID        *string         `json:"managerId,omitempty"`
	Status           Status          `json:"status"`
	AccessRole       AccessRole      `json:"userRole"`
	JoinDate         string          `json:"joinDate"` // YYYY-MM-DD
	Address          string          `json:"address"`
	Phone            string          `json:"phone"`
	Salary           decimal.Decimal `json:"salary"` // annual
	ProfilePicture   *string         `json:"profilePicture,omitempty"`
	TaxID            *string         `json:"taxId,omitempty"`
	EmergencyContact *string         `json:"emergencyContact,omitempty"`
	BankAccount      *string         `json:"bankAccount,omitempty"`
	DOB              *string         `json:"dob,omitempty"`
	Documents        []Document      `json:"documents"`

	LeaveUsed    LeaveCounters `json:"leaveUsed"`
	LeaveAllowed LeaveCounters `json:"leaveAllowed"`
}

// LeaveCounters tracks per-category day counts.
type LeaveCounters struct {
	Vacation int `json:"vacation"`
	Sick     int `json:"sick"`
	Personal int `json:"personal"`
}

type Status string

const (
	StatusActive     Status = "Active"
	StatusOnboarding Status = "Onboarding"
	StatusOnLeave    Status = "On Leave"
	StatusTerminated Status = "Terminated"
)

type AccessRole string

const (
	RoleAdmin    AccessRole = "Admin"
	RoleHR       AccessRole = "HR"
	RoleEmployee AccessRole = "Employee"
)

// IsManager reports whether the role may perform HR/admin actions.
func (r AccessRole) IsManager() bool {
	return r == RoleAdmin || r == RoleHR
}

// Document is a metadata record for a file owned by an employee. The file
// content itself stays on the client; only the descriptor lives here.
type Document struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	UploadDate string `json:"uploadDate"`
}
