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

func TestReminderCreate(t *testing.T) {
	t.Parallel()

	f := newAPIFixture()
	reminder := f.createReminder(t, "jane", "Standup")

	assert.Equal(t, "Standup", reminder.Name)
	assert.Equal(t, "jane", reminder.CreatedBy)
	// Stamped server-side even though the client sent nothing for it.
	assert.False(t, reminder.CreatedAt.IsZero())
}

func TestReminderUpdate(t *testing.T) {
	t.Parallel()

	f := newAPIFixture()
	reminder := f.createReminder(t, "jane", "Standup")

	rec := f.do(t, http.MethodPut, "/api/reminders/"+reminder.ID.String(), "jane", api.ReminderRequest{
		Name: "Retro",
		Type: "weekly",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated domain.Reminder
	decodeBody(t, rec, &updated)
	assert.Equal(t, "Retro", updated.Name)
	assert.Equal(t, "jane", updated.CreatedBy)
	assert.Equal(t, reminder.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestReminderNotFoundResponses(t *testing.T) {
	t.Parallel()

	f := newAPIFixture()
	missing := uuid.New().String()

	get := f.do(t, http.MethodGet, "/api/reminders/"+missing, "jane", nil)
	assert.Equal(t, http.StatusNotFound, get.Code)

	upd := f.do(t, http.MethodPut, "/api/reminders/"+missing, "jane", api.ReminderRequest{Name: "X"})
	assert.Equal(t, http.StatusNotFound, upd.Code)

	del := f.do(t, http.MethodDelete, "/api/reminders/"+missing, "jane", nil)
	assert.Equal(t, http.StatusNotFound, del.Code)
}

func TestReminderListNotes(t *testing.T) {
	t.Parallel()

	f := newAPIFixture()
	reminder := f.createReminder(t, "jane", "Standup")
	other := f.createReminder(t, "jane", "Dentist")

	rec := f.do(t, http.MethodPost, "/api/notes", "jane", api.NoteRequest{
		Title:      "Attached",
		ReminderID: &reminder.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/notes", "jane", api.NoteRequest{Title: "Loose"})
	require.Equal(t, http.StatusCreated, rec.Code)

	list := f.do(t, http.MethodGet, "/api/reminders/"+reminder.ID.String()+"/notes", "jane", nil)
	require.Equal(t, http.StatusOK, list.Code)

	var notes []domain.Note
	decodeBody(t, list, &notes)
	require.Len(t, notes, 1)
	assert.Equal(t, "Attached", notes[0].Title)

	// A reminder with no notes answers with an empty list.
	empty := f.do(t, http.MethodGet, "/api/reminders/"+other.ID.String()+"/notes", "jane", nil)
	require.Equal(t, http.StatusOK, empty.Code)

	var none []domain.Note
	decodeBody(t, empty, &none)
	assert.Empty(t, none)
}

func TestReminderOwnership(t *testing.T) {
	t.Parallel()

	f := newAPIFixture()
	reminder := f.createReminder(t, "jane", "Private")

	get := f.do(t, http.MethodGet, "/api/reminders/"+reminder.ID.String(), "bob", nil)
	assert.Equal(t, http.StatusForbidden, get.Code)

	upd := f.do(t, http.MethodPut, "/api/reminders/"+reminder.ID.String(), "bob", api.ReminderRequest{Name: "Hijack"})
	assert.Equal(t, http.StatusForbidden, upd.Code)

	notes := f.do(t, http.MethodGet, "/api/reminders/"+reminder.ID.String()+"/notes", "bob", nil)
	assert.Equal(t, http.StatusForbidden, notes.Code)
}
