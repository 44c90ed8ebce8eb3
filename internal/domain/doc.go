// Package domain contains the core entities of the keepnote application
// (User, Category, Reminder, Note) together with their validation rules.
// Entities carry no persistence or transport concerns; those live in the
// store and api packages respectively.
package domain
