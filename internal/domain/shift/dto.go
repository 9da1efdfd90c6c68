package shift

import "github.com/zenhr/zenhr-backend-go/internal/pkg/validator"

type Response struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Type       Type   `json:"type"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

func ToResponse(s Shift) Response {
	return Response{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		Date:       s.Date,
		Type:       s.Type,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
	}
}

type AssignRequest struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Type       string `json:"type"`
}

func (r AssignRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "Employee is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "Expected YYYY-MM-DD"})
	}
	if !Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "Expected Full Day, Half Day, Leave or Off"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
