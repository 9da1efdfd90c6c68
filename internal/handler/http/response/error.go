package response

import (
	"errors"
	"net/http"

	"github.com/zenhr/zenhr-backend-go/internal/domain/announcement"
	"github.com/zenhr/zenhr-backend-go/internal/domain/attendance"
	"github.com/zenhr/zenhr-backend-go/internal/domain/auth"
	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/domain/leave"
	"github.com/zenhr/zenhr-backend-go/internal/domain/orgchart"
	"github.com/zenhr/zenhr-backend-go/internal/domain/shift"
	"github.com/zenhr/zenhr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, auth.ErrManagerRequired):
		Forbidden(w, "Admin or HR access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrDocumentNotFound):
		NotFound(w, "Document not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrPolicyNotFound):
		NotFound(w, "Leave policy not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, leave.ErrInProbation):
		BadRequest(w, "Probation period not completed", nil)
	case errors.Is(err, leave.ErrExceedsMaxDays):
		BadRequest(w, "Request exceeds the maximum days allowed per request", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrUnknownCategory):
		BadRequest(w, "Unknown leave category", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNoOpenSession):
		Conflict(w, "No open attendance session")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrInvalidType):
		BadRequest(w, "Unknown shift type", nil)

	// Announcement domain errors
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")

	// Org chart errors
	case errors.Is(err, orgchart.ErrCyclicHierarchy):
		UnprocessableEntity(w, "Reporting hierarchy contains a cycle", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
