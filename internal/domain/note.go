package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// NoteStatus represents the lifecycle state of a note
type NoteStatus string

// Possible note status values
const (
	NoteStatusActive    NoteStatus = "active"
	NoteStatusCompleted NoteStatus = "completed"
	NoteStatusArchived  NoteStatus = "archived"
)

// Common validation errors for Note
var (
	ErrEmptyNoteID        = errors.New("note ID cannot be empty")
	ErrEmptyNoteTitle     = errors.New("note title cannot be empty")
	ErrEmptyNoteCreatedBy = errors.New("note creator cannot be empty")
	ErrInvalidNoteStatus  = errors.New("invalid note status")
)

// Note is the central entity of the application. A note may reference
// one Category and one Reminder; both references are optional, and when
// present they must resolve to existing records at the moment the note
// is created or updated. That check belongs to the service layer, not
// the database schema.
type Note struct {
	ID         uuid.UUID  `json:"noteId"`
	Title      string     `json:"noteTitle"`
	Content    string     `json:"noteContent"`
	Status     NoteStatus `json:"noteStatus"`
	CreatedBy  string     `json:"createdBy"`
	CategoryID *uuid.UUID `json:"categoryId,omitempty"`
	ReminderID *uuid.UUID `json:"reminderId,omitempty"`
	CreatedAt  time.Time  `json:"noteCreationDate"`
	UpdatedAt  time.Time  `json:"noteUpdatedDate"`
}

// NewNote creates a new Note owned by the given user with optional
// category and reminder references. It generates a new UUID for the
// note ID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewNote(
	title, content string,
	status NoteStatus,
	createdBy string,
	categoryID, reminderID *uuid.UUID,
) (*Note, error) {
	note := &Note{
		ID:         uuid.New(),
		Title:      title,
		Content:    content,
		Status:     status,
		CreatedBy:  createdBy,
		CategoryID: categoryID,
		ReminderID: reminderID,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	if err := note.Validate(); err != nil {
		return nil, err
	}

	return note, nil
}

// Validate checks if the Note has valid data.
// Returns an error if any field fails validation.
func (n *Note) Validate() error {
	if n.ID == uuid.Nil {
		return ErrEmptyNoteID
	}

	if n.Title == "" {
		return ErrEmptyNoteTitle
	}

	if n.CreatedBy == "" {
		return ErrEmptyNoteCreatedBy
	}

	if !isValidNoteStatus(n.Status) {
		return ErrInvalidNoteStatus
	}

	return nil
}

// isValidNoteStatus checks if the given status is a valid NoteStatus.
func isValidNoteStatus(status NoteStatus) bool {
	switch status {
	case NoteStatusActive, NoteStatusCompleted, NoteStatusArchived:
		return true
	default:
		return false
	}
}
