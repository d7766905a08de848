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

// ProjectService is the interface that wraps portfolio project business logic
type ProjectService interface {
	Create(ctx context.Context, req *models.ProjectRequest) (*models.Project, error)
	GetAll(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id int) (*models.Project, error)
	Update(ctx context.Context, id int, req *models.ProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) (int, error)
}

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	BaseHandler
	service ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(service ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers project routes. Reads are public, mutations are
// admin only.
func (h *ProjectHandler) RegisterRoutes(r chi.Router, verifyToken, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/project", func(r chi.Router) {
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

// GetAll handles GET /api/project
// @Summary List projects
// @Tags project
// @Produce json
// @Success 200 {array} models.Project
// @Router /api/project [get]
func (h *ProjectHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.GetAll(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, projects)
}

// GetByID handles GET /api/project/{id}
func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	project, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, project)
}

// Create handles POST /api/project (admin only)
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, project)
}

// Update handles PUT /api/project/{id} (admin only)
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req models.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, project)
}

// Delete handles DELETE /api/project/{id} (admin only)
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

// DeleteAll handles DELETE /api/project (admin only)
func (h *ProjectHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteAll(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Deleted %d projects", deleted),
		"deleted": deleted,
	})
}
