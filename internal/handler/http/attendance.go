package http

import (
	"net/http"

	"github.com/zenhr/zenhr-backend-go/internal/handler/http/response"
	attendanceService "github.com/zenhr/zenhr-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	ToggleBreak(w http.ResponseWriter, r *http.Request)
	OpenSession(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService *attendanceService.Service
}

func NewAttendanceHandler(svc *attendanceService.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: svc}
}

type attendanceListPayload struct {
	Records interface{} `json:"records"`
	Summary interface{} `json:"summary"`
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromRequest(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	rec, err := h.attendanceService.ClockIn(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Clocked in", rec)
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromRequest(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	rec, err := h.attendanceService.ClockOut(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Clocked out", rec)
}

// ToggleBreak implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ToggleBreak(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromRequest(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	rec, err := h.attendanceService.ToggleBreak(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rec)
}

// OpenSession implements AttendanceHandler.
func (h *AttendanceHandlerImpl) OpenSession(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromRequest(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	rec, err := h.attendanceService.OpenSession(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rec)
}

// ListAll implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	records, summary, err := h.attendanceService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, attendanceListPayload{Records: records, Summary: summary})
}

// ListMine implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromRequest(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	records, summary, err := h.attendanceService.ListMine(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, attendanceListPayload{Records: records, Summary: summary})
}
