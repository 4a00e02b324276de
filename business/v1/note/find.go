package note

import (
	"context"

	"github.com/ribgsilva/private-notes/business/v1/auth"
	"github.com/ribgsilva/private-notes/persistence/v1/note"
	"github.com/ribgsilva/private-notes/sys"
)

// Find returns exactly one note, ErrNotFound when none matches
func Find(ctx context.Context, s auth.Session, id string) (Note, error) {
	if !s.Active() {
		return Note{}, ErrNotAuthenticated
	}
	if !known(id) {
		return Note{}, ErrNotFound
	}

	find, err := note.Find(ctx, s.AccessToken, id)
	if err != nil {
		sys.R.Log.Error("failure to fetch note ", id, ": ", err)
		return Note{}, err
	}
	if find.ID == "" {
		return Note{}, ErrNotFound
	}
	return Note(find), nil
}
