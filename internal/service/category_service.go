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

// CategoryService provides CRUD operations for categories scoped to their
// creator.
//
// Update and Delete follow a boolean contract: a missing category is
// reported as a false result, never as an error. This is deliberately
// asymmetric with ReminderService, which propagates its typed not-found on
// the same operations.
type CategoryService interface {
	// Create persists a new category. The caller layer is responsible for
	// attaching CreatedBy before invoking this.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by ID.
	// Returns store.ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// Update overwrites the category identified by id. A preflight existence
	// check failing yields (false, nil); hard errors are returned as errors.
	Update(ctx context.Context, category *domain.Category, id uuid.UUID) (bool, error)

	// Delete removes the category. A missing category yields (false, nil).
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// ListByUser returns all categories created by the given user, in store
	// order, possibly empty.
	ListByUser(ctx context.Context, userID string) ([]*domain.Category, error)
}

// categoryServiceImpl implements the CategoryService interface.
type categoryServiceImpl struct {
	categoryStore store.CategoryStore
	logger        *slog.Logger
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryStore store.CategoryStore, logger *slog.Logger) CategoryService {
	if logger == nil {
		logger = slog.Default()
	}

	return &categoryServiceImpl{
		categoryStore: categoryStore,
		logger:        logger.With("component", "category_service"),
	}
}

// Create persists a new category.
func (s *categoryServiceImpl) Create(ctx context.Context, category *domain.Category) error {
	if err := s.categoryStore.Create(ctx, category); err != nil {
		s.logger.Error("failed to create category",
			"error", err,
			"category_id", category.ID)
		return fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("category created",
		"category_id", category.ID,
		"created_by", category.CreatedBy)
	return nil
}

// GetByID retrieves a category by ID.
func (s *categoryServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, err := s.categoryStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			return nil, err
		}
		s.logger.Error("failed to retrieve category",
			"error", err,
			"category_id", id)
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}

	return category, nil
}

// Update overwrites the category identified by id after a preflight
// existence check. A missing category is swallowed into (false, nil).
func (s *categoryServiceImpl) Update(ctx context.Context, category *domain.Category, id uuid.UUID) (bool, error) {
	existing, err := s.categoryStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			s.logger.Debug("category not found for update", "category_id", id)
			return false, nil
		}
		s.logger.Error("failed to fetch category for update",
			"error", err,
			"category_id", id)
		return false, fmt.Errorf("failed to update category: %w", err)
	}

	category.ID = existing.ID
	category.CreatedBy = existing.CreatedBy
	category.CreatedAt = existing.CreatedAt

	if err := s.categoryStore.Update(ctx, category); err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			// Deleted between the preflight check and the write.
			s.logger.Debug("category vanished during update", "category_id", id)
			return false, nil
		}
		s.logger.Error("failed to update category",
			"error", err,
			"category_id", id)
		return false, fmt.Errorf("failed to update category: %w", err)
	}

	s.logger.Info("category updated", "category_id", id)
	return true, nil
}

// Delete removes the category. A missing category is swallowed into
// (false, nil).
func (s *categoryServiceImpl) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := s.categoryStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			s.logger.Debug("category not found for delete", "category_id", id)
			return false, nil
		}
		s.logger.Error("failed to delete category",
			"error", err,
			"category_id", id)
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Info("category deleted", "category_id", id)
	return true, nil
}

// ListByUser returns all categories created by the given user.
func (s *categoryServiceImpl) ListByUser(ctx context.Context, userID string) ([]*domain.Category, error) {
	categories, err := s.categoryStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list categories",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}
