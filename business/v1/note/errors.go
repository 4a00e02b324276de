package note

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotAuthenticated is returned when there is no active session
	ErrNotAuthenticated = errors.New("user not authenticated")
	// ErrTitleRequired is returned when the trimmed title is empty
	ErrTitleRequired = errors.New("title is required")
	// ErrNotFound is returned when no note with the id is visible to the session
	ErrNotFound = errors.New("note not found")
)

// IsValidation reports whether err was raised before any remote call because of bad input
func IsValidation(err error) bool {
	return errors.Is(err, ErrTitleRequired)
}

// known reports whether id can name a note, ids are uuids
func known(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
