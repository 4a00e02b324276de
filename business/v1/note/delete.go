package note

import (
	"context"

	"github.com/ribgsilva/private-notes/business/v1/auth"
	"github.com/ribgsilva/private-notes/persistence/v1/note"
	"github.com/ribgsilva/private-notes/sys"
)

// Delete removes the note, success does not mean a row existed
func Delete(ctx context.Context, s auth.Session, id string) error {
	if !s.Active() {
		return ErrNotAuthenticated
	}
	if !known(id) {
		return nil
	}

	if err := note.Delete(ctx, s.AccessToken, id); err != nil {
		sys.R.Log.Error("failure to delete note ", id, ": ", err)
		return err
	}
	return nil
}
