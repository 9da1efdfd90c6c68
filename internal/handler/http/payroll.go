package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zenhr/zenhr-backend-go/internal/handler/http/response"
	payrollService "github.com/zenhr/zenhr-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	MyEntry(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService *payrollService.Service
}

func NewPayrollHandler(svc *payrollService.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: svc}
}

// Summary implements PayrollHandler.
func (h *PayrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.payrollService.Summary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// MyEntry implements PayrollHandler.
func (h *PayrollHandlerImpl) MyEntry(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromRequest(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	entry, err := h.payrollService.Entry(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entry)
}

// DownloadPayslip streams the rendered PDF. Employees can only fetch their
// own payslip; Admin and HR may fetch anyone's through the id parameter.
func (h *PayrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		employeeID = employeeIDFromRequest(r)
	}
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	pdf, filename, err := h.payrollService.GeneratePayslipPDF(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
