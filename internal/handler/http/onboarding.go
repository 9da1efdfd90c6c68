package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/zenhr/zenhr-backend-go/internal/domain/onboarding"
	"github.com/zenhr/zenhr-backend-go/internal/handler/http/response"
	onboardingService "github.com/zenhr/zenhr-backend-go/internal/service/onboarding"
)

type OnboardingHandler interface {
	GeneratePlan(w http.ResponseWriter, r *http.Request)
	CompleteProfile(w http.ResponseWriter, r *http.Request)
}

type OnboardingHandlerImpl struct {
	onboardingService *onboardingService.Service
}

func NewOnboardingHandler(svc *onboardingService.Service) OnboardingHandler {
	return &OnboardingHandlerImpl{onboardingService: svc}
}

// GeneratePlan implements OnboardingHandler.
func (h *OnboardingHandlerImpl) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req onboarding.GeneratePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Generate plan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	plan, err := h.onboardingService.GeneratePlan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, plan)
}

// CompleteProfile implements OnboardingHandler.
func (h *OnboardingHandlerImpl) CompleteProfile(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromRequest(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req onboarding.CompleteProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Complete profile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.onboardingService.CompleteProfile(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile completed successfully", updated)
}
