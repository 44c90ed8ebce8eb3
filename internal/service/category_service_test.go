package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keepnote/keepnote-api/internal/domain"
	"github.com/keepnote/keepnote-api/internal/mocks"
	"github.com/keepnote/keepnote-api/internal/service"
	"github.com/keepnote/keepnote-api/internal/store"
)

func mustCategory(t *testing.T, name, createdBy string) *domain.Category {
	t.Helper()
	category, err := domain.NewCategory(name, "", createdBy)
	require.NoError(t, err)
	return category
}

func TestCategoryServiceCreateAndGet(t *testing.T) {
	t.Parallel()

	categoryStore := mocks.NewMockCategoryStore()
	svc := service.NewCategoryService(categoryStore, nil)

	category := mustCategory(t, "Work", "jane")
	require.NoError(t, svc.Create(context.Background(), category))

	got, err := svc.GetByID(context.Background(), category.ID)
	require.NoError(t, err)
	assert.Equal(t, category, got)

	_, err = svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrCategoryNotFound)
}

func TestCategoryServiceUpdate(t *testing.T) {
	t.Parallel()

	t.Run("updates and pins immutable fields", func(t *testing.T) {
		t.Parallel()

		categoryStore := mocks.NewMockCategoryStore()
		svc := service.NewCategoryService(categoryStore, nil)

		original := mustCategory(t, "Work", "jane")
		require.NoError(t, svc.Create(context.Background(), original))

		incoming := &domain.Category{
			ID:        uuid.New(),
			Name:      "Office",
			CreatedBy: "intruder",
		}

		updated, err := svc.Update(context.Background(), incoming, original.ID)
		require.NoError(t, err)
		assert.True(t, updated)

		got, err := svc.GetByID(context.Background(), original.ID)
		require.NoError(t, err)
		assert.Equal(t, "Office", got.Name)
		assert.Equal(t, "jane", got.CreatedBy)
		assert.Equal(t, original.CreatedAt, got.CreatedAt)
	})

	t.Run("missing category reports false, not error", func(t *testing.T) {
		t.Parallel()

		svc := service.NewCategoryService(mocks.NewMockCategoryStore(), nil)

		updated, err := svc.Update(context.Background(), mustCategory(t, "Work", "jane"), uuid.New())
		assert.NoError(t, err)
		assert.False(t, updated)
	})
}

func TestCategoryServiceDelete(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing category", func(t *testing.T) {
		t.Parallel()

		categoryStore := mocks.NewMockCategoryStore()
		svc := service.NewCategoryService(categoryStore, nil)

		category := mustCategory(t, "Work", "jane")
		require.NoError(t, svc.Create(context.Background(), category))

		deleted, err := svc.Delete(context.Background(), category.ID)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("missing category reports false, not error", func(t *testing.T) {
		t.Parallel()

		svc := service.NewCategoryService(mocks.NewMockCategoryStore(), nil)

		deleted, err := svc.Delete(context.Background(), uuid.New())
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestCategoryServiceListByUser(t *testing.T) {
	t.Parallel()

	categoryStore := mocks.NewMockCategoryStore()
	svc := service.NewCategoryService(categoryStore, nil)

	first := mustCategory(t, "Work", "jane")
	second := mustCategory(t, "Home", "jane")
	other := mustCategory(t, "Gym", "bob")

	for _, c := range []*domain.Category{first, second, other} {
		require.NoError(t, svc.Create(context.Background(), c))
	}

	categories, err := svc.ListByUser(context.Background(), "jane")
	require.NoError(t, err)
	assert.Equal(t, []*domain.Category{first, second}, categories)

	empty, err := svc.ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)
}
