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

func mustReminder(t *testing.T, name, createdBy string) *domain.Reminder {
	t.Helper()
	reminder, err := domain.NewReminder(name, "", "once", createdBy)
	require.NoError(t, err)
	return reminder
}

func TestReminderServiceCreate(t *testing.T) {
	t.Parallel()

	reminderStore := mocks.NewMockReminderStore()
	svc := service.NewReminderService(reminderStore, nil)

	reminder := mustReminder(t, "Standup", "jane")
	require.True(t, reminder.CreatedAt.IsZero())

	require.NoError(t, svc.Create(context.Background(), reminder))

	// The store stamps the creation date; the client never supplies it.
	assert.False(t, reminder.CreatedAt.IsZero())
}

func TestReminderServiceUpdate(t *testing.T) {
	t.Parallel()

	t.Run("updates and pins immutable fields", func(t *testing.T) {
		t.Parallel()

		reminderStore := mocks.NewMockReminderStore()
		svc := service.NewReminderService(reminderStore, nil)

		original := mustReminder(t, "Standup", "jane")
		require.NoError(t, svc.Create(context.Background(), original))
		stampedAt := original.CreatedAt

		incoming := &domain.Reminder{
			ID:        uuid.New(),
			Name:      "Retro",
			Type:      "weekly",
			CreatedBy: "intruder",
		}

		updated, err := svc.Update(context.Background(), incoming, original.ID)
		require.NoError(t, err)

		assert.Equal(t, original.ID, updated.ID)
		assert.Equal(t, "Retro", updated.Name)
		assert.Equal(t, "jane", updated.CreatedBy)
		assert.Equal(t, stampedAt, updated.CreatedAt)
	})

	t.Run("missing reminder propagates not found", func(t *testing.T) {
		t.Parallel()

		svc := service.NewReminderService(mocks.NewMockReminderStore(), nil)

		updated, err := svc.Update(context.Background(), mustReminder(t, "Standup", "jane"), uuid.New())
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, store.ErrReminderNotFound)
	})
}

func TestReminderServiceDelete(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing reminder", func(t *testing.T) {
		t.Parallel()

		reminderStore := mocks.NewMockReminderStore()
		svc := service.NewReminderService(reminderStore, nil)

		reminder := mustReminder(t, "Standup", "jane")
		require.NoError(t, svc.Create(context.Background(), reminder))

		require.NoError(t, svc.Delete(context.Background(), reminder.ID))

		_, err := svc.GetByID(context.Background(), reminder.ID)
		assert.ErrorIs(t, err, store.ErrReminderNotFound)
	})

	t.Run("missing reminder propagates not found", func(t *testing.T) {
		t.Parallel()

		svc := service.NewReminderService(mocks.NewMockReminderStore(), nil)
		assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New()), store.ErrReminderNotFound)
	})
}

func TestReminderServiceListByUser(t *testing.T) {
	t.Parallel()

	reminderStore := mocks.NewMockReminderStore()
	svc := service.NewReminderService(reminderStore, nil)

	mine := mustReminder(t, "Standup", "jane")
	other := mustReminder(t, "Dentist", "bob")
	require.NoError(t, svc.Create(context.Background(), mine))
	require.NoError(t, svc.Create(context.Background(), other))

	reminders, err := svc.ListByUser(context.Background(), "jane")
	require.NoError(t, err)
	assert.Equal(t, []*domain.Reminder{mine}, reminders)
}
