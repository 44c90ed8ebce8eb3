package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/keepnote/keepnote-api/internal/domain"
	"github.com/keepnote/keepnote-api/internal/store"
)

// ReminderService provides CRUD operations for reminders scoped to their
// creator.
//
// Unlike CategoryService, Update and Delete propagate
// store.ErrReminderNotFound instead of converting it to a boolean result.
// Callers that need a boolean can test with errors.Is.
type ReminderService interface {
	// Create persists a new reminder. The creation timestamp is stamped by
	// the persistence boundary, never taken from the caller.
	Create(ctx context.Context, reminder *domain.Reminder) error

	// GetByID retrieves a reminder by ID.
	// Returns store.ErrReminderNotFound if the reminder does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)

	// Update overwrites the reminder identified by id and returns the
	// updated record.
	// Returns store.ErrReminderNotFound if no such reminder exists.
	Update(ctx context.Context, reminder *domain.Reminder, id uuid.UUID) (*domain.Reminder, error)

	// Delete removes the reminder.
	// Returns store.ErrReminderNotFound if the reminder does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByUser returns all reminders created by the given user, in store
	// order, possibly empty.
	ListByUser(ctx context.Context, userID string) ([]*domain.Reminder, error)
}

// reminderServiceImpl implements the ReminderService interface.
type reminderServiceImpl struct {
	reminderStore store.ReminderStore
	logger        *slog.Logger
}

// NewReminderService creates a new ReminderService.
func NewReminderService(reminderStore store.ReminderStore, logger *slog.Logger) ReminderService {
	if logger == nil {
		logger = slog.Default()
	}

	return &reminderServiceImpl{
		reminderStore: reminderStore,
		logger:        logger.With("component", "reminder_service"),
	}
}

// Create persists a new reminder.
func (s *reminderServiceImpl) Create(ctx context.Context, reminder *domain.Reminder) error {
	if err := s.reminderStore.Create(ctx, reminder); err != nil {
		s.logger.Error("failed to create reminder",
			"error", err,
			"reminder_id", reminder.ID)
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	s.logger.Info("reminder created",
		"reminder_id", reminder.ID,
		"created_by", reminder.CreatedBy)
	return nil
}

// GetByID retrieves a reminder by ID.
func (s *reminderServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	reminder, err := s.reminderStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrReminderNotFound) {
			return nil, err
		}
		s.logger.Error("failed to retrieve reminder",
			"error", err,
			"reminder_id", id)
		return nil, fmt.Errorf("failed to retrieve reminder: %w", err)
	}

	return reminder, nil
}

// Update overwrites the reminder identified by id. The preflight fetch
// confirms existence and pins the immutable fields; its typed not-found
// propagates to the caller.
func (s *reminderServiceImpl) Update(ctx context.Context, reminder *domain.Reminder, id uuid.UUID) (*domain.Reminder, error) {
	existing, err := s.reminderStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrReminderNotFound) {
			s.logger.Debug("reminder not found for update", "reminder_id", id)
			return nil, err
		}
		s.logger.Error("failed to fetch reminder for update",
			"error", err,
			"reminder_id", id)
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}

	reminder.ID = existing.ID
	reminder.CreatedBy = existing.CreatedBy
	reminder.CreatedAt = existing.CreatedAt

	if err := s.reminderStore.Update(ctx, reminder); err != nil {
		s.logger.Error("failed to update reminder",
			"error", err,
			"reminder_id", id)
		if errors.Is(err, store.ErrReminderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}

	s.logger.Info("reminder updated", "reminder_id", id)
	return reminder, nil
}

// Delete removes the reminder; a miss propagates the typed not-found.
func (s *reminderServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.reminderStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrReminderNotFound) {
			s.logger.Debug("reminder not found for delete", "reminder_id", id)
			return err
		}
		s.logger.Error("failed to delete reminder",
			"error", err,
			"reminder_id", id)
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	s.logger.Info("reminder deleted", "reminder_id", id)
	return nil
}

// ListByUser returns all reminders created by the given user.
func (s *reminderServiceImpl) ListByUser(ctx context.Context, userID string) ([]*domain.Reminder, error) {
	reminders, err := s.reminderStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list reminders",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	return reminders, nil
}
