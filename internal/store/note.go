package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/keepnote/keepnote-api/internal/domain"
)

// NoteStore defines the interface for note data persistence.
//
// Referential integrity of the optional category and reminder references
// is enforced by the note service before calling into this interface;
// the store itself only persists what it is given.
type NoteStore interface {
	// Create saves a new note to the store.
	// Returns validation errors from the domain Note if data is invalid.
	Create(ctx context.Context, note *domain.Note) error

	// GetByID retrieves a note by its unique ID.
	// Returns ErrNoteNotFound if the note does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error)

	// Update saves changes to an existing note.
	// Returns ErrNoteNotFound if the note does not exist.
	Update(ctx context.Context, note *domain.Note) error

	// Delete removes a note from the store by its ID.
	// Returns ErrNoteNotFound if the note does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByUser retrieves all notes created by the given user,
	// in insertion order. Returns an empty slice if the user has none.
	ListByUser(ctx context.Context, userID string) ([]*domain.Note, error)

	// ListByReminder retrieves all notes referencing the given reminder.
	// This is the derived back-reference from Reminder to its notes; it is
	// query-only so no ownership cycle exists between the two aggregates.
	ListByReminder(ctx context.Context, reminderID uuid.UUID) ([]*domain.Note, error)

	// WithTx returns a new NoteStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) NoteStore
}
