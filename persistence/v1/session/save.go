package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ribgsilva/private-notes/sys"
)

// Save stores the session for the configured session ttl, replacing any previous value
func Save(ctx context.Context, s Session) error {
	cache := sys.R.Cache

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("error parsing session to cache: %w", err)
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := cache.Set(tcCtx, fmt.Sprintf(sessionKey, s.ID), string(data), sys.Configs.Cache.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to set session into cache: %w", err)
	}
	return nil
}
