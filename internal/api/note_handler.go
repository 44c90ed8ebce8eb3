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

// NoteHandler handles note CRUD for the authenticated user. Reference
// failures surfaced by the service (unknown reminder or category) map to
// 404 so the client learns which reference did not resolve.
type NoteHandler struct {
	noteService service.NoteService
	logger      *slog.Logger
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService service.NoteService, logger *slog.Logger) *NoteHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &NoteHandler{
		noteService: noteService,
		logger:      logger.With("component", "note_handler"),
	}
}

// respondReferenceError maps the typed reference errors to responses and
// reports whether it handled the error.
func respondReferenceError(w http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case errors.Is(err, store.ErrReminderNotFound):
		shared.RespondWithError(w, r, http.StatusNotFound, "Referenced reminder not found")
		return true
	case errors.Is(err, store.ErrCategoryNotFound):
		shared.RespondWithError(w, r, http.StatusNotFound, "Referenced category not found")
		return true
	}
	return false
}

// Create handles POST /api/notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetUserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req NoteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	note, err := domain.NewNote(req.Title, req.Content, req.noteStatus(), principal, req.CategoryID, req.ReminderID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.noteService.Create(r.Context(), note); err != nil {
		if respondReferenceError(w, r, err) {
			return
		}
		h.logger.Error("failed to create note",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create note")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, note)
}

// List handles GET /api/notes, returning the principal's notes.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetUserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	notes, err := h.noteService.ListByUser(r.Context(), principal)
	if err != nil {
		h.logger.Error("failed to list notes",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list notes")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, notes)
}

// fetchOwned resolves the {id} parameter, fetches the note and checks
// ownership. It writes the error response itself on failure.
func (h *NoteHandler) fetchOwned(w http.ResponseWriter, r *http.Request) (*domain.Note, bool) {
	principal, ok := middleware.GetUserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid note ID")
		return nil, false
	}

	note, err := h.noteService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Note not found")
			return nil, false
		}
		h.logger.Error("failed to get note",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to retrieve note")
		return nil, false
	}

	if note.CreatedBy != principal {
		shared.RespondWithError(w, r, http.StatusForbidden, "Access denied")
		return nil, false
	}

	return note, true
}

// Get handles GET /api/notes/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	note, ok := h.fetchOwned(w, r)
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, note)
}

// Update handles PUT /api/notes/{id}. References omitted from the payload
// are cleared on the stored note, not re-validated, so a note left pointing
// at a deleted reminder can still be updated with a text-only payload.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.fetchOwned(w, r)
	if !ok {
		return
	}

	var req NoteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	note := &domain.Note{
		ID:         existing.ID,
		Title:      req.Title,
		Content:    req.Content,
		Status:     req.noteStatus(),
		CreatedBy:  existing.CreatedBy,
		CategoryID: req.CategoryID,
		ReminderID: req.ReminderID,
		CreatedAt:  existing.CreatedAt,
		UpdatedAt:  existing.UpdatedAt,
	}

	updated, err := h.noteService.Update(r.Context(), note, existing.ID)
	if err != nil {
		if respondReferenceError(w, r, err) {
			return
		}
		if errors.Is(err, store.ErrNoteNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Note not found")
			return
		}
		h.logger.Error("failed to update note",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update note")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /api/notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.fetchOwned(w, r)
	if !ok {
		return
	}

	deleted, err := h.noteService.Delete(r.Context(), existing.ID)
	if err != nil {
		h.logger.Error("failed to delete note",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to delete note")
		return
	}
	if !deleted {
		shared.RespondWithError(w, r, http.StatusNotFound, "Note not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
