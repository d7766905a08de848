package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/portfoliosite/backend/internal/models"
	"go.uber.org/zap"
)

// ServiceService is the interface that wraps offered-service business logic
type ServiceService interface {
	Create(ctx context.Context, req *models.ServiceRequest) (*models.Service, error)
	GetAll(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id int) (*models.Service, error)
	Update(ctx context.Context, id int, req *models.ServiceRequest) (*models.Service, error)
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) (int, error)
}

// ServiceHandler handles service-related HTTP requests
type ServiceHandler struct {
	BaseHandler
	service ServiceService
}

// NewServiceHandler creates a new service handler
func NewServiceHandler(service ServiceService, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers service routes. Reads are public, mutations are
// admin only.
func (h *ServiceHandler) RegisterRoutes(r chi.Router, verifyToken, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/service", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/{id}", h.GetByID)
		r.Group(func(r chi.Router) {
			r.Use(verifyToken, requireAdmin)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
			r.Delete("/", h.DeleteAll)
		})
	})
}

// GetAll handles GET /api/service
func (h *ServiceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.GetAll(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, services)
}

// GetByID handles GET /api/service/{id}
func (h *ServiceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	service, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, service)
}

// Create handles POST /api/service (admin only)
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	service, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, service)
}

// Update handles PUT /api/service/{id} (admin only)
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req models.ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	service, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, service)
}

// Delete handles DELETE /api/service/{id} (admin only)
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "Service deleted successfully"})
}

// DeleteAll handles DELETE /api/service (admin only)
func (h *ServiceHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteAll(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Deleted %d services", deleted),
		"deleted": deleted,
	})
}
