package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
)

type Service struct {
	employee.Repository
}

func NewService(employees employee.Repository) *Service {
	return &Service{Repository: employees}
}

func (s *Service) Create(ctx context.Context, req employee.CreateRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.Response{}, fmt.Errorf("hash password: %w", err)
	}

	status := employee.Status(req.Status)
	if status == "" {
		status = employee.StatusActive
	}
	accessRole := employee.AccessRole(req.UserRole)
	if accessRole == "" {
		accessRole = employee.RoleEmployee
	}
	joinDate := req.JoinDate
	if joinDate == "" {
		joinDate = time.Now().Format("2006-01-02")
	}

	created, err := s.Repository.Create(ctx, employee.Employee{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   string(hash),
		JobTitle:       req.Role,
		Department:     req.Department,
		ManagerID:      req.ManagerID,
		Status:         status,
		AccessRole:     accessRole,
		JoinDate:       joinDate,
		Address:        req.Address,
		Phone:          req.Phone,
		Salary:         decimal.NewFromFloat(req.Salary),
		ProfilePicture: req.ProfilePicture,
		Documents:      []employee.Document{},
		LeaveAllowed: employee.LeaveCounters{
			Vacation: req.VacationAllowed,
			Sick:     req.SickAllowed,
			Personal: req.PersonalAllowed,
		},
	})
	if err != nil {
		return employee.Response{}, err
	}
	return employee.ToResponse(created), nil
}

func (s *Service) Get(ctx context.Context, id string) (employee.Response, error) {
	emp, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return employee.Response{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *Service) List(ctx context.Context) ([]employee.Response, error) {
	emps, err := s.Repository.List(ctx)
	if err != nil {
		return nil, err
	}
	return employee.ToResponses(emps), nil
}

// Update applies only the fields present in the request. A new password is
// re-hashed; there is no path that stores one in the clear.
func (s *Service) Update(ctx context.Context, req employee.UpdateRequest) (employee.Response, error) {
	emp, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Response{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.Response{}, fmt.Errorf("hash password: %w", err)
		}
		emp.PasswordHash = string(hash)
	}
	if req.Role != nil {
		emp.JobTitle = *req.Role
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.ManagerID != nil {
		if *req.ManagerID == "" {
			emp.ManagerID = nil
		} else {
			emp.ManagerID = req.ManagerID
		}
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}
	if req.UserRole != nil {
		emp.AccessRole = employee.AccessRole(*req.UserRole)
	}
	if req.Address != nil {
		emp.Address = *req.Address
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.Salary != nil {
		emp.Salary = decimal.NewFromFloat(*req.Salary)
	}
	if req.ProfilePicture != nil {
		emp.ProfilePicture = req.ProfilePicture
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

	if err := s.Repository.Update(ctx, emp); err != nil {
		return employee.Response{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repository.Delete(ctx, id)
}

// AddDocument appends a document metadata record.
func (s *Service) AddDocument(ctx context.Context, employeeID string, req employee.AddDocumentRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}
	emp, err := s.Repository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Response{}, err
	}
	emp.Documents = append(emp.Documents, employee.Document{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Type:       req.Type,
		UploadDate: time.Now().Format("2006-01-02"),
	})
	if err := s.Repository.Update(ctx, emp); err != nil {
		return employee.Response{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *Service) RemoveDocument(ctx context.Context, employeeID, documentID string) (employee.Response, error) {
	emp, err := s.Repository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Response{}, err
	}
	next := emp.Documents[:0]
	found := false
	for _, d := range emp.Documents {
		if d.ID == documentID {
			found = true
			continue
		}
		next = append(next, d)
	}
	if !found {
		return employee.Response{}, employee.ErrDocumentNotFound
	}
	emp.Documents = next
	if err := s.Repository.Update(ctx, emp); err != nil {
		return employee.Response{}, err
	}
	return employee.ToResponse(emp), nil
}
