package domain

import (
	"errors"
	"time"
)

// Common validation errors for User
var (
	ErrEmptyUserID       = errors.New("user ID cannot be empty")
	ErrEmptyUserPassword = errors.New("user password cannot be empty")
)

// User represents a registered user of the keepnote application.
// The ID is externally supplied at registration time and is immutable
// afterwards; it doubles as the owner reference recorded on every
// entity the user creates.
type User struct {
	ID        string    `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Mobile    string    `json:"mobile"`
	Password  string    `json:"-"` // Opaque credential, never exposed in JSON
	AddedDate time.Time `json:"addedDate"`
}

// NewUser creates a new User with the given ID and credential.
// The registration timestamp is set to the current time.
// Returns an error if validation fails.
func NewUser(id, password, firstName, lastName, mobile string) (*User, error) {
	user := &User{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Mobile:    mobile,
		Password:  password,
		AddedDate: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == "" {
		return ErrEmptyUserID
	}

	if u.Password == "" {
		return ErrEmptyUserPassword
	}

	return nil
}
