package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keepnote/keepnote-api/internal/domain"
)

func TestNewNote(t *testing.T) {
	t.Parallel()

	t.Run("creates note with both references", func(t *testing.T) {
		t.Parallel()

		categoryID := uuid.New()
		reminderID := uuid.New()

		note, err := domain.NewNote("Groceries", "milk, eggs", domain.NoteStatusActive, "jane", &categoryID, &reminderID)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, note.ID)
		assert.Equal(t, "Groceries", note.Title)
		assert.Equal(t, "jane", note.CreatedBy)
		require.NotNil(t, note.CategoryID)
		assert.Equal(t, categoryID, *note.CategoryID)
		require.NotNil(t, note.ReminderID)
		assert.Equal(t, reminderID, *note.ReminderID)
		assert.False(t, note.CreatedAt.IsZero())
	})

	t.Run("references are optional", func(t *testing.T) {
		t.Parallel()

		note, err := domain.NewNote("Loose thought", "", domain.NoteStatusActive, "jane", nil, nil)
		require.NoError(t, err)

		assert.Nil(t, note.CategoryID)
		assert.Nil(t, note.ReminderID)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		t.Parallel()

		note, err := domain.NewNote("", "body", domain.NoteStatusActive, "jane", nil, nil)
		assert.ErrorIs(t, err, domain.ErrEmptyNoteTitle)
		assert.Nil(t, note)
	})

	t.Run("rejects missing creator", func(t *testing.T) {
		t.Parallel()

		note, err := domain.NewNote("Title", "", domain.NoteStatusActive, "", nil, nil)
		assert.ErrorIs(t, err, domain.ErrEmptyNoteCreatedBy)
		assert.Nil(t, note)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		t.Parallel()

		note, err := domain.NewNote("Title", "", domain.NoteStatus("pending"), "jane", nil, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidNoteStatus)
		assert.Nil(t, note)
	})
}

func TestNoteStatusValues(t *testing.T) {
	t.Parallel()

	for _, status := range []domain.NoteStatus{
		domain.NoteStatusActive,
		domain.NoteStatusCompleted,
		domain.NoteStatusArchived,
	} {
		note, err := domain.NewNote("Title", "", status, "jane", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, status, note.Status)
	}
}
