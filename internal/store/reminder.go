package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/keepnote/keepnote-api/internal/domain"
)

// ReminderStore defines the interface for reminder data persistence.
type ReminderStore interface {
	// Create saves a new reminder to the store. The creation timestamp is
	// stamped here, at the persistence boundary, never taken from the caller.
	// Returns validation errors from the domain Reminder if data is invalid.
	Create(ctx context.Context, reminder *domain.Reminder) error

	// GetByID retrieves a reminder by its unique ID.
	// Returns ErrReminderNotFound if the reminder does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)

	// Update saves changes to an existing reminder. The creation timestamp
	// is immutable and is not written.
	// Returns ErrReminderNotFound if the reminder does not exist.
	Update(ctx context.Context, reminder *domain.Reminder) error

	// Delete removes a reminder from the store by its ID.
	// Returns ErrReminderNotFound if the reminder does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByUser retrieves all reminders created by the given user,
	// in insertion order. Returns an empty slice if the user has none.
	ListByUser(ctx context.Context, userID string) ([]*domain.Reminder, error)

	// WithTx returns a new ReminderStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ReminderStore
}
