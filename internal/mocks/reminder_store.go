package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/keepnote/keepnote-api/internal/domain"
	"github.com/keepnote/keepnote-api/internal/store"
)

// MockReminderStore implements store.ReminderStore for testing.
type MockReminderStore struct {
	CreateFn     func(ctx context.Context, reminder *domain.Reminder) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	UpdateFn     func(ctx context.Context, reminder *domain.Reminder) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error
	ListByUserFn func(ctx context.Context, userID string) ([]*domain.Reminder, error)

	Reminders map[uuid.UUID]*domain.Reminder
	order     []uuid.UUID
}

// NewMockReminderStore creates a new mock store with initialized defaults.
func NewMockReminderStore() *MockReminderStore {
	return &MockReminderStore{
		Reminders: make(map[uuid.UUID]*domain.Reminder),
	}
}

// Ensure MockReminderStore implements store.ReminderStore interface
var _ store.ReminderStore = (*MockReminderStore)(nil)

// Create implements the ReminderStore interface. Like the real store, it
// stamps the creation timestamp at the persistence boundary.
func (m *MockReminderStore) Create(ctx context.Context, reminder *domain.Reminder) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, reminder)
	}

	reminder.CreatedAt = time.Now().UTC()
	m.Reminders[reminder.ID] = reminder
	m.order = append(m.order, reminder.ID)
	return nil
}

// GetByID implements the ReminderStore interface
func (m *MockReminderStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	reminder, exists := m.Reminders[id]
	if !exists {
		return nil, store.ErrReminderNotFound
	}

	return reminder, nil
}

// Update implements the ReminderStore interface
func (m *MockReminderStore) Update(ctx context.Context, reminder *domain.Reminder) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, reminder)
	}

	if _, exists := m.Reminders[reminder.ID]; !exists {
		return store.ErrReminderNotFound
	}

	m.Reminders[reminder.ID] = reminder
	return nil
}

// Delete implements the ReminderStore interface
func (m *MockReminderStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Reminders[id]; !exists {
		return store.ErrReminderNotFound
	}

	delete(m.Reminders, id)
	return nil
}

// ListByUser implements the ReminderStore interface
func (m *MockReminderStore) ListByUser(ctx context.Context, userID string) ([]*domain.Reminder, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	reminders := make([]*domain.Reminder, 0)
	for _, id := range m.order {
		reminder, exists := m.Reminders[id]
		if exists && reminder.CreatedBy == userID {
			reminders = append(reminders, reminder)
		}
	}
	return reminders, nil
}

// WithTx implements the ReminderStore interface; the mock has no
// transaction concept, so it returns itself.
func (m *MockReminderStore) WithTx(tx *sql.Tx) store.ReminderStore {
	return m
}
