package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/keepnote/keepnote-api/internal/api/middleware"
	"github.com/keepnote/keepnote-api/internal/api/shared"
	"github.com/keepnote/keepnote-api/internal/domain"
	"github.com/keepnote/keepnote-api/internal/service"
	"github.com/keepnote/keepnote-api/internal/store"
)

// CategoryHandler handles category CRUD for the authenticated user.
type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService service.CategoryService, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger.With("component", "category_handler"),
	}
}

// Create handles POST /api/categories. Ownership is stamped from the
// principal, never taken from the payload.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetUserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	category, err := domain.NewCategory(req.Name, req.Description, principal)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.categoryService.Create(r.Context(), category); err != nil {
		h.logger.Error("failed to create category",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create category")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, category)
}

// List handles GET /api/categories, returning the principal's categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetUserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	categories, err := h.categoryService.ListByUser(r.Context(), principal)
	if err != nil {
		h.logger.Error("failed to list categories",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list categories")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categories)
}

// fetchOwned resolves the {id} parameter, fetches the category and checks
// ownership. It writes the error response itself on failure.
func (h *CategoryHandler) fetchOwned(w http.ResponseWriter, r *http.Request) (*domain.Category, bool) {
	principal, ok := middleware.GetUserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid category ID")
		return nil, false
	}

	category, err := h.categoryService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Category not found")
			return nil, false
		}
		h.logger.Error("failed to get category",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to retrieve category")
		return nil, false
	}

	if category.CreatedBy != principal {
		shared.RespondWithError(w, r, http.StatusForbidden, "Access denied")
		return nil, false
	}

	return category, true
}

// Get handles GET /api/categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, ok := h.fetchOwned(w, r)
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, category)
}

// Update handles PUT /api/categories/{id}. The service reports a missing
// category as a false result; the wire keeps saying 404 either way.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.fetchOwned(w, r)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	category := &domain.Category{
		ID:          existing.ID,
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   existing.CreatedBy,
		CreatedAt:   existing.CreatedAt,
	}

	updated, err := h.categoryService.Update(r.Context(), category, existing.ID)
	if err != nil {
		h.logger.Error("failed to update category",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update category")
		return
	}
	if !updated {
		shared.RespondWithError(w, r, http.StatusNotFound, "Category not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, category)
}

// Delete handles DELETE /api/categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.fetchOwned(w, r)
	if !ok {
		return
	}

	deleted, err := h.categoryService.Delete(r.Context(), existing.ID)
	if err != nil {
		h.logger.Error("failed to delete category",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	if !deleted {
		shared.RespondWithError(w, r, http.StatusNotFound, "Category not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
