package employee

import (
	"github.com/shopspring/decimal"

	"github.com/zenhr/zenhr-backend-go/internal/pkg/validator"
)

// Response mirrors the console's employee shape. The access role travels as
// "userRole" and the job title as "role", matching the client contract.
type Response struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Role             string          `json:"role"`
	Department       string          `json:"department"`
	ManagerID        *string         `json:"managerId,omitempty"`
	Status           Status          `json:"status"`
	UserRole         AccessRole      `json:"userRole"`
	JoinDate         string          `json:"joinDate"`
	Address          string          `json:"address"`
	Phone            string          `json:"phone"`
	Salary           decimal.Decimal `json:"salary"`
	ProfilePicture   *string         `json:"profilePicture,omitempty"`
	TaxID            *string         `json:"taxId,omitempty"`
	EmergencyContact *string         `json:"emergencyContact,omitempty"`
	BankAccount      *string         `json:"bankAccount,omitempty"`
	DOB              *string         `json:"dob,omitempty"`
	Documents        []Document      `json:"documents"`
	VacationUsed     int             `json:"vacationUsed"`
	SickUsed         int             `json:"sickUsed"`
	PersonalUsed     int             `json:"personalUsed"`
	VacationAllowed  int             `json:"vacationAllowed"`
	SickAllowed      int             `json:"sickAllowed"`
	PersonalAllowed  int             `json:"personalAllowed"`
}

func ToResponse(e Employee) Response {
	docs := e.Documents
	if docs == nil {
		docs = []Document{}
	}
	return Response{
		ID:               e.ID,
		Name:             e.Name,
		Email:            e.Email,
		Role:             e.JobTitle,
		Department:       e.Department,
		ManagerID:        e.ManagerID,
		Status:           e.Status,
		UserRole:         e.AccessRole,
		JoinDate:         e.JoinDate,
		Address:          e.Address,
		Phone:            e.Phone,
		Salary:           e.Salary,
		ProfilePicture:   e.ProfilePicture,
		TaxID:            e.TaxID,
		EmergencyContact: e.EmergencyContact,
		BankAccount:      e.BankAccount,
		DOB:              e.DOB,
		Documents:        docs,
		VacationUsed:     e.LeaveUsed.Vacation,
		SickUsed:         e.LeaveUsed.Sick,
		PersonalUsed:     e.LeaveUsed.Personal,
		VacationAllowed:  e.LeaveAllowed.Vacation,
		SickAllowed:      e.LeaveAllowed.Sick,
		PersonalAllowed:  e.LeaveAllowed.Personal,
	}
}

func ToResponses(list []Employee) []Response {
	out := make([]Response, 0, len(list))
	for _, e := range list {
		out = append(out, ToResponse(e))
	}
	return out
}

type CreateRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	Role            string  `json:"role"`
	Department      string  `json:"department"`
	ManagerID       *string `json:"managerId"`
	Status          string  `json:"status"`
	UserRole        string  `json:"userRole"`
	JoinDate        string  `json:"joinDate"`
	Address         string  `json:"address"`
	Phone           string  `json:"phone"`
	Salary          float64 `json:"salary"`
	ProfilePicture  *string `json:"profilePicture"`
	VacationAllowed int     `json:"vacationAllowed"`
	SickAllowed     int     `json:"sickAllowed"`
	PersonalAllowed int     `json:"personalAllowed"`
}

func (r CreateRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "A valid email is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password is required"})
	}
	if r.JoinDate != "" {
		if _, ok := validator.IsValidDate(r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joinDate", Message: "Expected YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	ID               string   `json:"id"`
	Name             *string  `json:"name"`
	Email            *string  `json:"email"`
	Password         *string  `json:"password"`
	Role             *string  `json:"role"`
	Department       *string  `json:"department"`
	ManagerID        *string  `json:"managerId"`
	Status           *string  `json:"status"`
	UserRole         *string  `json:"userRole"`
	Address          *string  `json:"address"`
	Phone            *string  `json:"phone"`
	Salary           *float64 `json:"salary"`
	ProfilePicture   *string  `json:"profilePicture"`
	TaxID            *string  `json:"taxId"`
	EmergencyContact *string  `json:"emergencyContact"`
	BankAccount      *string  `json:"bankAccount"`
	DOB              *string  `json:"dob"`
}

type AddDocumentRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (r AddDocumentRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Document name is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
