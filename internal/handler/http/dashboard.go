package http

import (
	"net/http"

	"github.com/zenhr/zenhr-backend-go/internal/handler/http/response"
	dashboardService "github.com/zenhr/zenhr-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService *dashboardService.Service
}

func NewDashboardHandler(svc *dashboardService.Service) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: svc}
}

// Stats implements DashboardHandler.
func (h *DashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}
