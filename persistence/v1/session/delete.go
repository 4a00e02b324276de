package session

import (
	"context"
	"fmt"

	"github.com/ribgsilva/private-notes/sys"
)

func Delete(ctx context.Context, id string) error {
	cache := sys.R.Cache

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := cache.Del(tcCtx, fmt.Sprintf(sessionKey, id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from cache: %w", err)
	}
	return nil
}
