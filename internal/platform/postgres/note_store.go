package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/keepnote/keepnote-api/internal/domain"
	"github.com/keepnote/keepnote-api/internal/platform/logger"
	"github.com/keepnote/keepnote-api/internal/store"
)

// PostgresNoteStore implements the store.NoteStore interface
// using a PostgreSQL database as the storage backend.
type PostgresNoteStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresNoteStore creates a new PostgreSQL implementation of the NoteStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresNoteStore(db store.DBTX, logger *slog.Logger) *PostgresNoteStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresNoteStore{
		db:     db,
		logger: logger.With(slog.String("component", "note_store")),
	}
}

// Ensure PostgresNoteStore implements store.NoteStore interface
var _ store.NoteStore = (*PostgresNoteStore)(nil)

// Create implements store.NoteStore.Create
// It saves a new note to the database, handling domain validation.
// Category and reminder references are persisted as given; their existence
// has already been checked by the note service.
func (s *PostgresNoteStore) Create(ctx context.Context, note *domain.Note) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := note.Validate(); err != nil {
		log.Warn("note validation failed during create",
			slog.String("error", err.Error()),
			slog.String("note_id", note.ID.String()))
		return err
	}

	query := `
		INSERT INTO notes (id, title, content, status, created_by, category_id, reminder_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		note.ID,
		note.Title,
		note.Content,
		note.Status,
		note.CreatedBy,
		note.CategoryID,
		note.ReminderID,
		note.CreatedAt,
		note.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create note",
			slog.String("error", err.Error()),
			slog.String("note_id", note.ID.String()),
			slog.String("created_by", note.CreatedBy))
		return MapError(err)
	}

	log.Info("note created successfully",
		slog.String("note_id", note.ID.String()),
		slog.String("created_by", note.CreatedBy))
	return nil
}

// GetByID implements store.NoteStore.GetByID
// It retrieves a note by its unique ID.
// Returns store.ErrNoteNotFound if the note does not exist.
func (s *PostgresNoteStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, status, created_by, category_id, reminder_id, created_at, updated_at
		FROM notes
		WHERE id = $1
	`

	note, err := scanNote(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("note not found", slog.String("note_id", id.String()))
			return nil, store.ErrNoteNotFound
		}
		log.Error("failed to get note by ID",
			slog.String("error", err.Error()),
			slog.String("note_id", id.String()))
		return nil, MapError(err)
	}

	return note, nil
}

// Update implements store.NoteStore.Update
// It saves changes to an existing note and refreshes the update timestamp.
// Returns store.ErrNoteNotFound if the note does not exist.
func (s *PostgresNoteStore) Update(ctx context.Context, note *domain.Note) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := note.Validate(); err != nil {
		log.Warn("note validation failed during update",
			slog.String("error", err.Error()),
			slog.String("note_id", note.ID.String()))
		return err
	}

	note.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE notes
		SET title = $1, content = $2, status = $3, category_id = $4, reminder_id = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		note.Title,
		note.Content,
		note.Status,
		note.CategoryID,
		note.ReminderID,
		note.UpdatedAt,
		note.ID,
	)

	if err != nil {
		log.Error("failed to update note",
			slog.String("error", err.Error()),
			slog.String("note_id", note.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrNoteNotFound); err != nil {
		log.Debug("note not found for update", slog.String("note_id", note.ID.String()))
		return err
	}

	log.Info("note updated successfully", slog.String("note_id", note.ID.String()))
	return nil
}

// Delete implements store.NoteStore.Delete
// It removes a note from the database by its ID.
// Returns store.ErrNoteNotFound if the note does not exist.
func (s *PostgresNoteStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM notes WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete note",
			slog.String("error", err.Error()),
			slog.String("note_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrNoteNotFound); err != nil {
		log.Debug("note not found for delete", slog.String("note_id", id.String()))
		return err
	}

	log.Info("note deleted successfully", slog.String("note_id", id.String()))
	return nil
}

// ListByUser implements store.NoteStore.ListByUser
// It retrieves all notes created by the given user in insertion order.
func (s *PostgresNoteStore) ListByUser(ctx context.Context, userID string) ([]*domain.Note, error) {
	query := `
		SELECT id, title, content, status, created_by, category_id, reminder_id, created_at, updated_at
		FROM notes
		WHERE created_by = $1
		ORDER BY created_at
	`
	return s.listNotes(ctx, query, userID)
}

// ListByReminder implements store.NoteStore.ListByReminder
// It retrieves all notes referencing the given reminder.
func (s *PostgresNoteStore) ListByReminder(ctx context.Context, reminderID uuid.UUID) ([]*domain.Note, error) {
	query := `
		SELECT id, title, content, status, created_by, category_id, reminder_id, created_at, updated_at
		FROM notes
		WHERE reminder_id = $1
		ORDER BY created_at
	`
	return s.listNotes(ctx, query, reminderID)
}

// listNotes runs a query returning note rows and scans them into a slice.
func (s *PostgresNoteStore) listNotes(ctx context.Context, query string, arg any) ([]*domain.Note, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		log.Error("failed to list notes", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	notes := make([]*domain.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Error("failed to scan note row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return notes, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanNote scans a single note row, converting nullable reference columns
// into optional UUID pointers.
func scanNote(row rowScanner) (*domain.Note, error) {
	var note domain.Note
	var status string
	var categoryID, reminderID uuid.NullUUID

	err := row.Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&status,
		&note.CreatedBy,
		&categoryID,
		&reminderID,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	note.Status = domain.NoteStatus(status)
	if categoryID.Valid {
		id := categoryID.UUID
		note.CategoryID = &id
	}
	if reminderID.Valid {
		id := reminderID.UUID
		note.ReminderID = &id
	}

	return &note, nil
}

// WithTx implements store.NoteStore.WithTx
// It returns a new NoteStore instance that uses the provided transaction.
func (s *PostgresNoteStore) WithTx(tx *sql.Tx) store.NoteStore {
	return &PostgresNoteStore{
		db:     tx,
		logger: s.logger,
	}
}
