package schema

import (
	"context"
	"errors"

	"github.com/ribgsilva/private-notes/sys"
)

func Drop(ctx context.Context) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Schema.OperationTimeout)
	defer dbCancel()
	_, err := db.ExecContext(dbCtx, dropSchema)
	if err != nil {
		return errors.New("drop schema: " + err.Error())
	}

	return nil
}
