package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keepnote/keepnote-api/internal/domain"
)

func TestNewReminder(t *testing.T) {
	t.Parallel()

	t.Run("creates valid reminder without creation date", func(t *testing.T) {
		t.Parallel()

		reminder, err := domain.NewReminder("Standup", "daily sync", "recurring", "jane")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, reminder.ID)
		assert.Equal(t, "Standup", reminder.Name)
		assert.Equal(t, "recurring", reminder.Type)
		assert.Equal(t, "jane", reminder.CreatedBy)
		// Stamped at insert time, not here.
		assert.True(t, reminder.CreatedAt.IsZero())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()

		reminder, err := domain.NewReminder("", "", "", "jane")
		assert.ErrorIs(t, err, domain.ErrEmptyReminderName)
		assert.Nil(t, reminder)
	})

	t.Run("rejects missing creator", func(t *testing.T) {
		t.Parallel()

		reminder, err := domain.NewReminder("Standup", "", "", "")
		assert.ErrorIs(t, err, domain.ErrEmptyReminderCreatedBy)
		assert.Nil(t, reminder)
	})
}
