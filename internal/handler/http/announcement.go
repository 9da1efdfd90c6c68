package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/zenhr/zenhr-backend-go/internal/domain/announcement"
	"github.com/zenhr/zenhr-backend-go/internal/handler/http/response"
	announcementService "github.com/zenhr/zenhr-backend-go/internal/service/announcement"
)

type AnnouncementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AnnouncementHandlerImpl struct {
	announcementService *announcementService.Service
}

func NewAnnouncementHandler(svc *announcementService.Service) AnnouncementHandler {
	return &AnnouncementHandlerImpl{announcementService: svc}
}

// Create implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req announcement.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create announcement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	author := "HR Team"
	if _, claims, err := jwtauth.FromContext(r.Context()); err == nil {
		if email, ok := claims["email"].(string); ok && email != "" {
			author = email
		}
	}

	created, err := h.announcementService.Create(r.Context(), req, author)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Announcement published successfully", created)
}

// List implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcementService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, announcements)
}

// Delete implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Announcement ID is required", nil)
		return
	}

	if err := h.announcementService.Remove(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Announcement deleted successfully", nil)
}
