package note

import (
	"context"

	"github.com/ribgsilva/private-notes/business/v1/auth"
	"github.com/ribgsilva/private-notes/persistence/v1/note"
	"github.com/ribgsilva/private-notes/sys"
)

// List returns the notes of the session, newest first
func List(ctx context.Context, s auth.Session) ([]Note, error) {
	if !s.Active() {
		return nil, ErrNotAuthenticated
	}

	found, err := note.List(ctx, s.AccessToken)
	if err != nil {
		sys.R.Log.Error("failure to fetch notes: ", err)
		return nil, err
	}

	notes := make([]Note, 0, len(found))
	for _, n := range found {
		notes = append(notes, Note(n))
	}
	return notes, nil
}
