package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Category
var (
	ErrEmptyCategoryID        = errors.New("category ID cannot be empty")
	ErrEmptyCategoryName      = errors.New("category name cannot be empty")
	ErrEmptyCategoryCreatedBy = errors.New("category creator cannot be empty")
)

// Category is a user-defined grouping for notes. Each category is
// privately scoped to the user recorded in CreatedBy.
type Category struct {
	ID          uuid.UUID `json:"categoryId"`
	Name        string    `json:"categoryName"`
	Description string    `json:"categoryDescription"`
	CreatedBy   string    `json:"categoryCreatedBy"`
	CreatedAt   time.Time `json:"categoryCreationDate"`
}

// NewCategory creates a new Category owned by the given user.
// It generates a new UUID for the category ID and stamps the creation time.
// Returns an error if validation fails.
func NewCategory(name, description, createdBy string) (*Category, error) {
	category := &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
// Returns an error if any field fails validation.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCategoryID
	}

	if c.Name == "" {
		return ErrEmptyCategoryName
	}

	if c.CreatedBy == "" {
		return ErrEmptyCategoryCreatedBy
	}

	return nil
}
