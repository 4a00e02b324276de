package note

import (
	"context"
	"fmt"

	"github.com/ribgsilva/private-notes/sys"
)

// List returns every note visible to the token owner, newest created first
func List(ctx context.Context, token string) ([]Note, error) {
	db := sys.R.Platform

	notes := []Note{}
	err := db.From(table, token).
		Select(columns).
		Order("created_at", false).
		Execute(ctx, &notes)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	return notes, nil
}
