package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Reminder
var (
	ErrEmptyReminderID        = errors.New("reminder ID cannot be empty")
	ErrEmptyReminderName      = errors.New("reminder name cannot be empty")
	ErrEmptyReminderCreatedBy = errors.New("reminder creator cannot be empty")
)

// Reminder represents a scheduled prompt a user can attach notes to.
// CreatedAt is stamped by the persistence layer at insert time and is
// immutable afterwards; it is never accepted from the client.
//
// The set of notes referencing a reminder is a derived relation obtained
// through the note store, not a field on the Reminder itself, so it never
// appears in serialized output.
type Reminder struct {
	ID          uuid.UUID `json:"reminderId"`
	Name        string    `json:"reminderName"`
	Description string    `json:"reminderDescription"`
	Type        string    `json:"reminderType"`
	CreatedBy   string    `json:"reminderCreatedBy"`
	CreatedAt   time.Time `json:"reminderCreationDate"`
}

// NewReminder creates a new Reminder owned by the given user.
// It generates a new UUID for the reminder ID. The creation timestamp is
// left zero here; the store stamps it when the row is inserted.
// Returns an error if validation fails.
func NewReminder(name, description, reminderType, createdBy string) (*Reminder, error) {
	reminder := &Reminder{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Type:        reminderType,
		CreatedBy:   createdBy,
	}

	if err := reminder.Validate(); err != nil {
		return nil, err
	}

	return reminder, nil
}

// Validate checks if the Reminder has valid data.
// Returns an error if any field fails validation.
func (r *Reminder) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyReminderID
	}

	if r.Name == "" {
		return ErrEmptyReminderName
	}

	if r.CreatedBy == "" {
		return ErrEmptyReminderCreatedBy
	}

	return nil
}
