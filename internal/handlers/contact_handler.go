package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/portfoliosite/backend/internal/models"
	"go.uber.org/zap"
)

// ContactService is the interface that wraps contact form business logic
type ContactService interface {
	Create(ctx context.Context, req *models.ContactRequest) (*models.Contact, error)
	GetAll(ctx context.Context) ([]models.Contact, error)
	GetByID(ctx context.Context, id int) (*models.Contact, error)
	Update(ctx context.Context, id int, req *models.ContactRequest) (*models.Contact, error)
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) (int, error)
}

// ContactHandler handles contact-related HTTP requests
type ContactHandler struct {
	BaseHandler
	service ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers contact routes. Reads and the contact form POST
// are public; update and delete are admin only.
func (h *ContactHandler) RegisterRoutes(r chi.Router, verifyToken, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/contact", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/{id}", h.GetByID)
		r.Post("/", h.Create)
		r.Group(func(r chi.Router) {
			r.Use(verifyToken, requireAdmin)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
			r.Delete("/", h.DeleteAll)
		})
	})
}

// Create handles POST /api/contact
// @Summary Submit the contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Contact form"
// @Success 201 {object} models.Contact
// @Failure 400 {object} map[string]string "Missing required fields"
// @Router /api/contact [post]
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contact, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, contact)
}

// GetAll handles GET /api/contact
func (h *ContactHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.GetAll(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, contacts)
}

// GetByID handles GET /api/contact/{id}
func (h *ContactHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	contact, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, contact)
}

// Update handles PUT /api/contact/{id} (admin only)
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contact, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, contact)
}

// Delete handles DELETE /api/contact/{id} (admin only)
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "Contact deleted successfully"})
}

// DeleteAll handles DELETE /api/contact (admin only)
func (h *ContactHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteAll(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Deleted %d contacts", deleted),
		"deleted": deleted,
	})
}

// pathID parses the {id} URL parameter
func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
