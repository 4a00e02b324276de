package note

import (
	"context"
	"fmt"

	"github.com/ribgsilva/private-notes/sys"
)

// Insert writes the note and returns the stored row with its server assigned id and timestamps
func Insert(ctx context.Context, token string, newN NewNote) (Note, error) {
	db := sys.R.Platform

	var note Note
	err := db.From(table, token).
		Insert(newN).
		Select(columns).
		Single().
		Execute(ctx, &note)
	if err != nil {
		return Note{}, fmt.Errorf("failed to insert note: %w", err)
	}
	return note, nil
}
