package api_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keepnote/keepnote-api/internal/api"
	"github.com/keepnote/keepnote-api/internal/domain"
)

func TestCategoryCRUD(t *testing.T) {
	t.Parallel()

	f := newAPIFixture()
	category := f.createCategory(t, "jane", "Work")
	assert.Equal(t, "jane", category.CreatedBy)

	t.Run("get", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/categories/"+category.ID.String(), "jane", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got domain.Category
		decodeBody(t, rec, &got)
		assert.Equal(t, category.ID, got.ID)
	})

	t.Run("update keeps owner and creation date", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/categories/"+category.ID.String(), "jane", api.CategoryRequest{
			Name:        "Office",
			Description: "renamed",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated domain.Category
		decodeBody(t, rec, &updated)
		assert.Equal(t, "Office", updated.Name)
		assert.Equal(t, "jane", updated.CreatedBy)
		assert.Equal(t, category.CreatedAt.Unix(), updated.CreatedAt.Unix())
	})

	t.Run("list", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/categories", "jane", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var categories []domain.Category
		decodeBody(t, rec, &categories)
		assert.Len(t, categories, 1)
	})

	t.Run("delete", func(t *testing.T) {
		rec := f.do(t, http.MethodDelete, "/api/categories/"+category.ID.String(), "jane", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		gone := f.do(t, http.MethodGet, "/api/categories/"+category.ID.String(), "jane", nil)
		assert.Equal(t, http.StatusNotFound, gone.Code)
	})
}

func TestCategoryNotFoundAndOwnership(t *testing.T) {
	t.Parallel()

	f := newAPIFixture()
	category := f.createCategory(t, "jane", "Private")

	t.Run("missing category", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/categories/"+uuid.New().String(), "jane", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid ID", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/categories/not-a-uuid", "jane", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("foreign category is forbidden", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/categories/"+category.ID.String(), "bob", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		del := f.do(t, http.MethodDelete, "/api/categories/"+category.ID.String(), "bob", nil)
		assert.Equal(t, http.StatusForbidden, del.Code)
	})
}
