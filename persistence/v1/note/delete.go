package note

import (
	"context"
	"fmt"

	"github.com/ribgsilva/private-notes/sys"
)

// Delete removes the note with id, deleting nothing is not an error
func Delete(ctx context.Context, token, id string) error {
	db := sys.R.Platform

	if err := db.From(table, token).Delete().Eq("id", id).Execute(ctx, nil); err != nil {
		return fmt.Errorf("failed to delete note %s: %w", id, err)
	}
	return nil
}
