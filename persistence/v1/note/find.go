package note

import (
	"context"
	"fmt"

	"github.com/ribgsilva/private-notes/platform/supabase"
	"github.com/ribgsilva/private-notes/sys"
)

// Find returns the note with id visible to the token owner, an empty Note when no row matches
func Find(ctx context.Context, token, id string) (Note, error) {
	db := sys.R.Platform

	var note Note
	err := db.From(table, token).
		Select(columns).
		Eq("id", id).
		Single().
		Execute(ctx, &note)
	switch {
	case supabase.IsNoRows(err):
		return Note{}, nil
	case err != nil:
		return Note{}, fmt.Errorf("failed to query note %s: %w", id, err)
	}
	return note, nil
}
