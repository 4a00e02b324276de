package schema

import (
	"context"
	"errors"

	"github.com/ribgsilva/private-notes/sys"
)

func Create(ctx context.Context) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Schema.OperationTimeout)
	defer dbCancel()
	_, err := db.ExecContext(dbCtx, schema)
	if err != nil {
		return errors.New("create schema: " + err.Error())
	}

	return nil
}
