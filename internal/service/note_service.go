package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/keepnote/keepnote-api/internal/domain"
	"github.com/keepnote/keepnote-api/internal/store"
)

// NoteService provides CRUD operations for notes and is the only place
// where the two foreign aggregates a note may reference (Category and
// Reminder) are validated together before a mutation commits.
//
// The validation order on Create and Update is a fixed contract: the
// Reminder reference is checked before the Category reference, and the
// first failing check aborts the operation. When both references are
// invalid the caller therefore always sees ErrReminderNotFound.
type NoteService interface {
	// Create persists a new note after validating its optional references.
	// Returns store.ErrReminderNotFound or store.ErrCategoryNotFound when a
	// present reference does not resolve; the note is not created in that
	// case.
	Create(ctx context.Context, note *domain.Note) error

	// GetByID retrieves a note by ID.
	// Returns store.ErrNoteNotFound if the note does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error)

	// Update overwrites the note identified by id and returns the updated
	// record. The existing note is fetched first (a miss propagates
	// store.ErrNoteNotFound), then the incoming references are validated in
	// the same Reminder-then-Category order as Create. References absent
	// from the incoming note are not re-validated, so a dangling stored
	// reference does not fail a text-only update.
	Update(ctx context.Context, note *domain.Note, id uuid.UUID) (*domain.Note, error)

	// Delete removes the note. A missing note yields (false, nil); callers
	// cannot distinguish not-found from other delete refusals through this
	// path.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// ListByUser returns all notes created by the given user, possibly empty.
	ListByUser(ctx context.Context, userID string) ([]*domain.Note, error)

	// ListByReminder returns all notes referencing the given reminder. This
	// is the derived back-reference from Reminder to Note.
	ListByReminder(ctx context.Context, reminderID uuid.UUID) ([]*domain.Note, error)
}

// noteServiceImpl implements the NoteService interface.
type noteServiceImpl struct {
	noteStore     store.NoteStore
	categoryStore store.CategoryStore
	reminderStore store.ReminderStore
	db            *sql.DB
	logger        *slog.Logger
}

// NewNoteService creates a new NoteService. The db handle is used to run
// the reference checks and the write of a mutation inside one transaction;
// it may be nil in unit tests backed by mock stores, in which case the
// steps run directly on the supplied stores.
func NewNoteService(
	noteStore store.NoteStore,
	categoryStore store.CategoryStore,
	reminderStore store.ReminderStore,
	db *sql.DB,
	logger *slog.Logger,
) NoteService {
	if logger == nil {
		logger = slog.Default()
	}

	return &noteServiceImpl{
		noteStore:     noteStore,
		categoryStore: categoryStore,
		reminderStore: reminderStore,
		db:            db,
		logger:        logger.With("component", "note_service"),
	}
}

// runInTransaction executes fn inside a database transaction when a db
// handle is available, closing the check-then-act window between the
// reference validations and the write. Without a handle the function runs
// directly; mock stores ignore the nil transaction.
func (s *noteServiceImpl) runInTransaction(ctx context.Context, fn store.TxFn) error {
	if s.db == nil {
		return fn(ctx, nil)
	}
	return store.RunInTransaction(ctx, s.db, fn)
}

// txStores returns transaction-bound views of the three stores, or the
// stores themselves when tx is nil.
func (s *noteServiceImpl) txStores(tx *sql.Tx) (store.NoteStore, store.CategoryStore, store.ReminderStore) {
	if tx == nil {
		return s.noteStore, s.categoryStore, s.reminderStore
	}
	return s.noteStore.WithTx(tx), s.categoryStore.WithTx(tx), s.reminderStore.WithTx(tx)
}

// validateReferences checks the note's optional reminder and category
// references, in that order, against the given stores. The first failing
// lookup aborts with its typed not-found error.
func (s *noteServiceImpl) validateReferences(
	ctx context.Context,
	note *domain.Note,
	categories store.CategoryStore,
	reminders store.ReminderStore,
) error {
	if note.ReminderID != nil {
		if _, err := reminders.GetByID(ctx, *note.ReminderID); err != nil {
			if errors.Is(err, store.ErrReminderNotFound) {
				s.logger.Debug("note references unknown reminder",
					"note_id", note.ID,
					"reminder_id", *note.ReminderID)
				return err
			}
			return fmt.Errorf("failed to validate reminder reference: %w", err)
		}
	}

	if note.CategoryID != nil {
		if _, err := categories.GetByID(ctx, *note.CategoryID); err != nil {
			if errors.Is(err, store.ErrCategoryNotFound) {
				s.logger.Debug("note references unknown category",
					"note_id", note.ID,
					"category_id", *note.CategoryID)
				return err
			}
			return fmt.Errorf("failed to validate category reference: %w", err)
		}
	}

	return nil
}

// Create persists a new note after validating its references.
func (s *noteServiceImpl) Create(ctx context.Context, note *domain.Note) error {
	err := s.runInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		notes, categories, reminders := s.txStores(tx)

		if err := s.validateReferences(ctx, note, categories, reminders); err != nil {
			return err
		}

		return notes.Create(ctx, note)
	})

	if err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		s.logger.Error("failed to create note",
			"error", err,
			"note_id", note.ID)
		return fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.Info("note created",
		"note_id", note.ID,
		"created_by", note.CreatedBy)
	return nil
}

// GetByID retrieves a note by ID.
func (s *noteServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	note, err := s.noteStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return nil, err
		}
		s.logger.Error("failed to retrieve note",
			"error", err,
			"note_id", id)
		return nil, fmt.Errorf("failed to retrieve note: %w", err)
	}

	return note, nil
}

// Update overwrites the note identified by id. Validation order: fetch the
// old note, then the incoming reminder reference, then the incoming
// category reference, then persist.
func (s *noteServiceImpl) Update(ctx context.Context, note *domain.Note, id uuid.UUID) (*domain.Note, error) {
	err := s.runInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		notes, categories, reminders := s.txStores(tx)

		existing, err := notes.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNoteNotFound) {
				s.logger.Debug("note not found for update", "note_id", id)
				return err
			}
			return fmt.Errorf("failed to fetch note for update: %w", err)
		}

		if err := s.validateReferences(ctx, note, categories, reminders); err != nil {
			return err
		}

		note.ID = existing.ID
		note.CreatedBy = existing.CreatedBy
		note.CreatedAt = existing.CreatedAt

		return notes.Update(ctx, note)
	})

	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		s.logger.Error("failed to update note",
			"error", err,
			"note_id", id)
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	s.logger.Info("note updated", "note_id", id)
	return note, nil
}

// Delete removes the note, converting not-found into a false result.
func (s *noteServiceImpl) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := s.noteStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			s.logger.Debug("note not found for delete", "note_id", id)
			return false, nil
		}
		s.logger.Error("failed to delete note",
			"error", err,
			"note_id", id)
		return false, fmt.Errorf("failed to delete note: %w", err)
	}

	s.logger.Info("note deleted", "note_id", id)
	return true, nil
}

// ListByUser returns all notes created by the given user.
func (s *noteServiceImpl) ListByUser(ctx context.Context, userID string) ([]*domain.Note, error) {
	notes, err := s.noteStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list notes",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

// ListByReminder returns all notes referencing the given reminder.
func (s *noteServiceImpl) ListByReminder(ctx context.Context, reminderID uuid.UUID) ([]*domain.Note, error) {
	notes, err := s.noteStore.ListByReminder(ctx, reminderID)
	if err != nil {
		s.logger.Error("failed to list notes by reminder",
			"error", err,
			"reminder_id", reminderID)
		return nil, fmt.Errorf("failed to list notes by reminder: %w", err)
	}

	return notes, nil
}
