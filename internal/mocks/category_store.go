package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/keepnote/keepnote-api/internal/domain"
	"github.com/keepnote/keepnote-api/internal/store"
)

// MockCategoryStore implements store.CategoryStore for testing.
type MockCategoryStore struct {
	CreateFn     func(ctx context.Context, category *domain.Category) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	UpdateFn     func(ctx context.Context, category *domain.Category) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error
	ListByUserFn func(ctx context.Context, userID string) ([]*domain.Category, error)

	Categories map[uuid.UUID]*domain.Category
	// order preserves insertion order for ListByUser
	order []uuid.UUID
}

// NewMockCategoryStore creates a new mock store with initialized defaults.
func NewMockCategoryStore() *MockCategoryStore {
	return &MockCategoryStore{
		Categories: make(map[uuid.UUID]*domain.Category),
	}
}

// Ensure MockCategoryStore implements store.CategoryStore interface
var _ store.CategoryStore = (*MockCategoryStore)(nil)

// Create implements the CategoryStore interface
func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, category)
	}

	m.Categories[category.ID] = category
	m.order = append(m.order, category.ID)
	return nil
}

// GetByID implements the CategoryStore interface
func (m *MockCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	category, exists := m.Categories[id]
	if !exists {
		return nil, store.ErrCategoryNotFound
	}

	return category, nil
}

// Update implements the CategoryStore interface
func (m *MockCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, category)
	}

	if _, exists := m.Categories[category.ID]; !exists {
		return store.ErrCategoryNotFound
	}

	m.Categories[category.ID] = category
	return nil
}

// Delete implements the CategoryStore interface
func (m *MockCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Categories[id]; !exists {
		return store.ErrCategoryNotFound
	}

	delete(m.Categories, id)
	return nil
}

// ListByUser implements the CategoryStore interface
func (m *MockCategoryStore) ListByUser(ctx context.Context, userID string) ([]*domain.Category, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	categories := make([]*domain.Category, 0)
	for _, id := range m.order {
		category, exists := m.Categories[id]
		if exists && category.CreatedBy == userID {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

// WithTx implements the CategoryStore interface; the mock has no
// transaction concept, so it returns itself.
func (m *MockCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	return m
}
