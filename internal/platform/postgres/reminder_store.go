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

// PostgresReminderStore implements the store.ReminderStore interface
// using a PostgreSQL database as the storage backend.
type PostgresReminderStore struct {
	db       store.DBTX
	logger   *slog.Logger
	timeFunc func() time.Time // Injectable for testing
}

// NewPostgresReminderStore creates a new PostgreSQL implementation of the ReminderStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresReminderStore(db store.DBTX, logger *slog.Logger) *PostgresReminderStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReminderStore{
		db:       db,
		logger:   logger.With(slog.String("component", "reminder_store")),
		timeFunc: time.Now,
	}
}

// Ensure PostgresReminderStore implements store.ReminderStore interface
var _ store.ReminderStore = (*PostgresReminderStore)(nil)

// Create implements store.ReminderStore.Create
// It saves a new reminder to the database. The creation timestamp is stamped
// here rather than taken from the caller, and is written back onto the
// reminder so the caller sees the persisted value.
func (s *PostgresReminderStore) Create(ctx context.Context, reminder *domain.Reminder) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := reminder.Validate(); err != nil {
		log.Warn("reminder validation failed during create",
			slog.String("error", err.Error()),
			slog.String("reminder_id", reminder.ID.String()))
		return err
	}

	// Stamp the creation time at the persistence boundary. Whatever the
	// client sent is discarded.
	reminder.CreatedAt = s.timeFunc().UTC()

	query := `
		INSERT INTO reminders (id, name, description, type, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		reminder.ID,
		reminder.Name,
		reminder.Description,
		reminder.Type,
		reminder.CreatedBy,
		reminder.CreatedAt,
	)

	if err != nil {
		log.Error("failed to create reminder",
			slog.String("error", err.Error()),
			slog.String("reminder_id", reminder.ID.String()),
			slog.String("created_by", reminder.CreatedBy))
		return MapError(err)
	}

	log.Info("reminder created successfully",
		slog.String("reminder_id", reminder.ID.String()),
		slog.String("created_by", reminder.CreatedBy))
	return nil
}

// GetByID implements store.ReminderStore.GetByID
// It retrieves a reminder by its unique ID.
// Returns store.ErrReminderNotFound if the reminder does not exist.
func (s *PostgresReminderStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, type, created_by, created_at
		FROM reminders
		WHERE id = $1
	`

	var reminder domain.Reminder
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&reminder.ID,
		&reminder.Name,
		&reminder.Description,
		&reminder.Type,
		&reminder.CreatedBy,
		&reminder.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("reminder not found", slog.String("reminder_id", id.String()))
			return nil, store.ErrReminderNotFound
		}
		log.Error("failed to get reminder by ID",
			slog.String("error", err.Error()),
			slog.String("reminder_id", id.String()))
		return nil, MapError(err)
	}

	return &reminder, nil
}

// Update implements store.ReminderStore.Update
// It saves changes to an existing reminder. The created_at column is
// immutable after insert and is deliberately absent from the statement.
// Returns store.ErrReminderNotFound if the reminder does not exist.
func (s *PostgresReminderStore) Update(ctx context.Context, reminder *domain.Reminder) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := reminder.Validate(); err != nil {
		log.Warn("reminder validation failed during update",
			slog.String("error", err.Error()),
			slog.String("reminder_id", reminder.ID.String()))
		return err
	}

	query := `
		UPDATE reminders
		SET name = $1, description = $2, type = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		reminder.Name,
		reminder.Description,
		reminder.Type,
		reminder.ID,
	)

	if err != nil {
		log.Error("failed to update reminder",
			slog.String("error", err.Error()),
			slog.String("reminder_id", reminder.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrReminderNotFound); err != nil {
		log.Debug("reminder not found for update",
			slog.String("reminder_id", reminder.ID.String()))
		return err
	}

	log.Info("reminder updated successfully",
		slog.String("reminder_id", reminder.ID.String()))
	return nil
}

// Delete implements store.ReminderStore.Delete
// It removes a reminder from the database by its ID. Notes referencing the
// reminder are left untouched; their reference becomes dangling and is only
// re-checked if a later note mutation re-validates it.
// Returns store.ErrReminderNotFound if the reminder does not exist.
func (s *PostgresReminderStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM reminders WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete reminder",
			slog.String("error", err.Error()),
			slog.String("reminder_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrReminderNotFound); err != nil {
		log.Debug("reminder not found for delete",
			slog.String("reminder_id", id.String()))
		return err
	}

	log.Info("reminder deleted successfully", slog.String("reminder_id", id.String()))
	return nil
}

// ListByUser implements store.ReminderStore.ListByUser
// It retrieves all reminders created by the given user in insertion order.
func (s *PostgresReminderStore) ListByUser(ctx context.Context, userID string) ([]*domain.Reminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, type, created_by, created_at
		FROM reminders
		WHERE created_by = $1
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list reminders by user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	reminders := make([]*domain.Reminder, 0)
	for rows.Next() {
		var reminder domain.Reminder
		if err := rows.Scan(
			&reminder.ID,
			&reminder.Name,
			&reminder.Description,
			&reminder.Type,
			&reminder.CreatedBy,
			&reminder.CreatedAt,
		); err != nil {
			log.Error("failed to scan reminder row",
				slog.String("error", err.Error()),
				slog.String("user_id", userID))
			return nil, MapError(err)
		}
		reminders = append(reminders, &reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return reminders, nil
}

// WithTx implements store.ReminderStore.WithTx
// It returns a new ReminderStore instance that uses the provided transaction.
func (s *PostgresReminderStore) WithTx(tx *sql.Tx) store.ReminderStore {
	return &PostgresReminderStore{
		db:       tx,
		logger:   s.logger,
		timeFunc: s.timeFunc,
	}
}
