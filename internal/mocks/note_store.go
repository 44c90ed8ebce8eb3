package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/keepnote/keepnote-api/internal/domain"
	"github.com/keepnote/keepnote-api/internal/store"
)

// MockNoteStore implements store.NoteStore for testing.
type MockNoteStore struct {
	CreateFn         func(ctx context.Context, note *domain.Note) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	UpdateFn         func(ctx context.Context, note *domain.Note) error
	DeleteFn         func(ctx context.Context, id uuid.UUID) error
	ListByUserFn     func(ctx context.Context, userID string) ([]*domain.Note, error)
	ListByReminderFn func(ctx context.Context, reminderID uuid.UUID) ([]*domain.Note, error)

	Notes map[uuid.UUID]*domain.Note
	order []uuid.UUID
}

// NewMockNoteStore creates a new mock store with initialized defaults.
func NewMockNoteStore() *MockNoteStore {
	return &MockNoteStore{
		Notes: make(map[uuid.UUID]*domain.Note),
	}
}

// Ensure MockNoteStore implements store.NoteStore interface
var _ store.NoteStore = (*MockNoteStore)(nil)

// Create implements the NoteStore interface
func (m *MockNoteStore) Create(ctx context.Context, note *domain.Note) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, note)
	}

	m.Notes[note.ID] = note
	m.order = append(m.order, note.ID)
	return nil
}

// GetByID implements the NoteStore interface
func (m *MockNoteStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	note, exists := m.Notes[id]
	if !exists {
		return nil, store.ErrNoteNotFound
	}

	return note, nil
}

// Update implements the NoteStore interface
func (m *MockNoteStore) Update(ctx context.Context, note *domain.Note) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, note)
	}

	if _, exists := m.Notes[note.ID]; !exists {
		return store.ErrNoteNotFound
	}

	m.Notes[note.ID] = note
	return nil
}

// Delete implements the NoteStore interface
func (m *MockNoteStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Notes[id]; !exists {
		return store.ErrNoteNotFound
	}

	delete(m.Notes, id)
	return nil
}

// ListByUser implements the NoteStore interface
func (m *MockNoteStore) ListByUser(ctx context.Context, userID string) ([]*domain.Note, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	notes := make([]*domain.Note, 0)
	for _, id := range m.order {
		note, exists := m.Notes[id]
		if exists && note.CreatedBy == userID {
			notes = append(notes, note)
		}
	}
	return notes, nil
}

// ListByReminder implements the NoteStore interface
func (m *MockNoteStore) ListByReminder(ctx context.Context, reminderID uuid.UUID) ([]*domain.Note, error) {
	if m.ListByReminderFn != nil {
		return m.ListByReminderFn(ctx, reminderID)
	}

	notes := make([]*domain.Note, 0)
	for _, id := range m.order {
		note, exists := m.Notes[id]
		if exists && note.ReminderID != nil && *note.ReminderID == reminderID {
			notes = append(notes, note)
		}
	}
	return notes, nil
}

// WithTx implements the NoteStore interface; the mock has no transaction
// concept, so it returns itself.
func (m *MockNoteStore) WithTx(tx *sql.Tx) store.NoteStore {
	return m
}
