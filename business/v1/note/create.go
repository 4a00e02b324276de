package note

import (
	"context"
	"strings"

	"github.com/ribgsilva/private-notes/business/v1/auth"
	"github.com/ribgsilva/private-notes/persistence/v1/note"
	"github.com/ribgsilva/private-notes/sys"
)

// Create stores a note owned by the session user, title and content are trimmed
func Create(ctx context.Context, s auth.Session, newN NewNote) (Note, error) {
	if !s.Active() {
		return Note{}, ErrNotAuthenticated
	}

	title, content := strings.TrimSpace(newN.Title), strings.TrimSpace(newN.Content)
	if title == "" {
		return Note{}, ErrTitleRequired
	}

	created, err := note.Insert(ctx, s.AccessToken, note.NewNote{
		UserID:  s.User.ID,
		Title:   title,
		Content: content,
	})
	if err != nil {
		sys.R.Log.Error("failure to create note: ", err)
		return Note{}, err
	}
	return Note(created), nil
}
