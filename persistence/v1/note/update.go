package note

import (
	"context"
	"fmt"

	"github.com/ribgsilva/private-notes/platform/supabase"
	"github.com/ribgsilva/private-notes/sys"
)

// Update replaces title and content of the note with id, an empty Note when no row matches
func Update(ctx context.Context, token, id string, upd NoteUpdate) (Note, error) {
	db := sys.R.Platform

	var note Note
	err := db.From(table, token).
		Update(upd).
		Eq("id", id).
		Select(columns).
		Single().
		Execute(ctx, &note)
	switch {
	case supabase.IsNoRows(err):
		return Note{}, nil
	case err != nil:
		return Note{}, fmt.Errorf("failed to update note %s: %w", id, err)
	}
	return note, nil
}
