package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/private-notes/sys"
)

// Find returns the stored session, an empty Session when there is none
func Find(ctx context.Context, id string) (Session, error) {
	cache := sys.R.Cache

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	get, err := cache.Get(tcCtx, fmt.Sprintf(sessionKey, id)).Result()
	switch {
	case err == redis.Nil:
		return Session{}, nil
	case err != nil:
		return Session{}, fmt.Errorf("failed to get session from cache: %w", err)
	}

	var s Session
	if err := json.Unmarshal([]byte(get), &s); err != nil {
		return Session{}, fmt.Errorf("error parsing cached session: %w", err)
	}
	return s, nil
}
