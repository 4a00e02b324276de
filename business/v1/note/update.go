package note

import (
	"context"
	"strings"

	"github.com/ribgsilva/private-notes/business/v1/auth"
	"github.com/ribgsilva/private-notes/persistence/v1/note"
	"github.com/ribgsilva/private-notes/sys"
)

// Update replaces title and content of the note, the platform moves updated_at forward
func Update(ctx context.Context, s auth.Session, id string, upd UpdateNote) (Note, error) {
	if !s.Active() {
		return Note{}, ErrNotAuthenticated
	}

	title, content := strings.TrimSpace(upd.Title), strings.TrimSpace(upd.Content)
	if title == "" {
		return Note{}, ErrTitleRequired
	}
	if !known(id) {
		return Note{}, ErrNotFound
	}

	updated, err := note.Update(ctx, s.AccessToken, id, note.NoteUpdate{
		Title:   title,
		Content: content,
	})
	if err != nil {
		sys.R.Log.Error("failure to update note ", id, ": ", err)
		return Note{}, err
	}
	if updated.ID == "" {
		return Note{}, ErrNotFound
	}
	return Note(updated), nil
}
