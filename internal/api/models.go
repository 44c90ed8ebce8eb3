package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/keepnote/keepnote-api/internal/domain"
)

// RegisterRequest holds the payload for user registration. The user ID is
// chosen by the client and becomes the login identifier.
type RegisterRequest struct {
	UserID    string `json:"userId" validate:"required"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Mobile    string `json:"mobile"`
}

// LoginRequest holds the payload for user login.
type LoginRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// UserResponse is the external representation of a user account. The
// credential never appears here.
type UserResponse struct {
	UserID    string    `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Mobile    string    `json:"mobile"`
	AddedDate time.Time `json:"addedDate"`
}

// NewUserResponse maps a domain user to its external representation.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Mobile:    user.Mobile,
		AddedDate: user.AddedDate,
	}
}

// UpdateUserRequest holds the payload for a full user update. The stored
// record is replaced field for field, so the credential is required too.
type UpdateUserRequest struct {
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Mobile    string `json:"mobile"`
}

// CategoryRequest holds the payload for creating or updating a category.
type CategoryRequest struct {
	Name        string `json:"categoryName" validate:"required"`
	Description string `json:"categoryDescription"`
}

// ReminderRequest holds the payload for creating or updating a reminder.
// The creation date is never part of the payload; the server stamps it.
type ReminderRequest struct {
	Name        string `json:"reminderName" validate:"required"`
	Description string `json:"reminderDescription"`
	Type        string `json:"reminderType"`
}

// NoteRequest holds the payload for creating or updating a note. The
// category and reminder references are optional; when present they must
// resolve to existing records.
type NoteRequest struct {
	Title      string     `json:"noteTitle" validate:"required"`
	Content    string     `json:"noteContent"`
	Status     string     `json:"noteStatus" validate:"omitempty,oneof=active completed archived"`
	CategoryID *uuid.UUID `json:"categoryId"`
	ReminderID *uuid.UUID `json:"reminderId"`
}

// noteStatus resolves the requested status, defaulting to active.
func (r NoteRequest) noteStatus() domain.NoteStatus {
	if r.Status == "" {
		return domain.NoteStatusActive
	}
	return domain.NoteStatus(r.Status)
}
