package http

import (
	"net/http"

	"github.com/zenhr/zenhr-backend-go/internal/handler/http/response"
	orgchartService "github.com/zenhr/zenhr-backend-go/internal/service/orgchart"
)

type OrgChartHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type OrgChartHandlerImpl struct {
	orgChartService *orgchartService.Service
}

func NewOrgChartHandler(svc *orgchartService.Service) OrgChartHandler {
	return &OrgChartHandlerImpl{orgChartService: svc}
}

// Get implements OrgChartHandler.
func (h *OrgChartHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	chart, err := h.orgChartService.Chart(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, chart)
}
