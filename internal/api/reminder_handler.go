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

// ReminderHandler handles reminder CRUD for the authenticated user, plus
// the derived listing of notes attached to a reminder.
type ReminderHandler struct {
	reminderService service.ReminderService
	noteService     service.NoteService
	logger          *slog.Logger
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(
	reminderService service.ReminderService,
	noteService service.NoteService,
	logger *slog.Logger,
) *ReminderHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &ReminderHandler{
		reminderService: reminderService,
		noteService:     noteService,
		logger:          logger.With("component", "reminder_handler"),
	}
}

// Create handles POST /api/reminders. The creation date is stamped by the
// persistence layer; anything the client sends for it is ignored.
func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetUserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req ReminderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	reminder, err := domain.NewReminder(req.Name, req.Description, req.Type, principal)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.reminderService.Create(r.Context(), reminder); err != nil {
		h.logger.Error("failed to create reminder",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create reminder")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, reminder)
}

// List handles GET /api/reminders, returning the principal's reminders.
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetUserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	reminders, err := h.reminderService.ListByUser(r.Context(), principal)
	if err != nil {
		h.logger.Error("failed to list reminders",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list reminders")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reminders)
}

// fetchOwned resolves the {id} parameter, fetches the reminder and checks
// ownership. It writes the error response itself on failure.
func (h *ReminderHandler) fetchOwned(w http.ResponseWriter, r *http.Request) (*domain.Reminder, bool) {
	principal, ok := middleware.GetUserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid reminder ID")
		return nil, false
	}

	reminder, err := h.reminderService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrReminderNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Reminder not found")
			return nil, false
		}
		h.logger.Error("failed to get reminder",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to retrieve reminder")
		return nil, false
	}

	if reminder.CreatedBy != principal {
		shared.RespondWithError(w, r, http.StatusForbidden, "Access denied")
		return nil, false
	}

	return reminder, true
}

// Get handles GET /api/reminders/{id}.
func (h *ReminderHandler) Get(w http.ResponseWriter, r *http.Request) {
	reminder, ok := h.fetchOwned(w, r)
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reminder)
}

// Update handles PUT /api/reminders/{id}.
func (h *ReminderHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.fetchOwned(w, r)
	if !ok {
		return
	}

	var req ReminderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	reminder := &domain.Reminder{
		ID:          existing.ID,
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		CreatedBy:   existing.CreatedBy,
		CreatedAt:   existing.CreatedAt,
	}

	updated, err := h.reminderService.Update(r.Context(), reminder, existing.ID)
	if err != nil {
		if errors.Is(err, store.ErrReminderNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Reminder not found")
			return
		}
		h.logger.Error("failed to update reminder",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update reminder")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /api/reminders/{id}. Notes referencing the deleted
// reminder keep their reference; the dangling pointer is tolerated until
// the note itself is next updated with a reminder reference.
func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.fetchOwned(w, r)
	if !ok {
		return
	}

	if err := h.reminderService.Delete(r.Context(), existing.ID); err != nil {
		if errors.Is(err, store.ErrReminderNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Reminder not found")
			return
		}
		h.logger.Error("failed to delete reminder",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to delete reminder")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// ListNotes handles GET /api/reminders/{id}/notes, the derived
// back-reference from a reminder to the notes attached to it.
func (h *ReminderHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	reminder, ok := h.fetchOwned(w, r)
	if !ok {
		return
	}

	notes, err := h.noteService.ListByReminder(r.Context(), reminder.ID)
	if err != nil {
		h.logger.Error("failed to list reminder notes",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list notes")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, notes)
}
