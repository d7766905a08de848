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

// QualificationService is the interface that wraps qualification business logic
type QualificationService interface {
	Create(ctx context.Context, req *models.QualificationRequest) (*models.Qualification, error)
	GetAll(ctx context.Context) ([]models.Qualification, error)
	GetByID(ctx context.Context, id int) (*models.Qualification, error)
	Update(ctx context.Context, id int, req *models.QualificationRequest) (*models.Qualification, error)
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) (int, error)
}

// QualificationHandler handles qualification-related HTTP requests
type QualificationHandler struct {
	BaseHandler
	service QualificationService
}

// NewQualificationHandler creates a new qualification handler
func NewQualificationHandler(service QualificationService, logger *zap.Logger) *QualificationHandler {
	return &QualificationHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers qualification routes. Reads are public, mutations
// are admin only.
func (h *QualificationHandler) RegisterRoutes(r chi.Router, verifyToken, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/qualification", func(r chi.Router) {
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

// GetAll handles GET /api/qualification
func (h *QualificationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	qualifications, err := h.service.GetAll(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, qualifications)
}

// GetByID handles GET /api/qualification/{id}
func (h *QualificationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	qualification, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, qualification)
}

// Create handles POST /api/qualification (admin only)
func (h *QualificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.QualificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	qualification, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, qualification)
}

// Update handles PUT /api/qualification/{id} (admin only)
func (h *QualificationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req models.QualificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	qualification, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, qualification)
}

// Delete handles DELETE /api/qualification/{id} (admin only)
func (h *QualificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "Qualification deleted successfully"})
}

// DeleteAll handles DELETE /api/qualification (admin only)
func (h *QualificationHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteAll(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Deleted %d qualifications", deleted),
		"deleted": deleted,
	})
}
