package session

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/private-notes/sys"
)

// SaveVerifier keeps the PKCE verifier of a provider sign in under its state
func SaveVerifier(ctx context.Context, state, verifier string) error {
	cache := sys.R.Cache

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := cache.Set(tcCtx, fmt.Sprintf(verifierKey, state), verifier, sys.Configs.Cache.VerifierTTL).Err(); err != nil {
		return fmt.Errorf("failed to set verifier into cache: %w", err)
	}
	return nil
}

// TakeVerifier returns and removes the verifier saved under state, empty when unknown or expired
func TakeVerifier(ctx context.Context, state string) (string, error) {
	cache := sys.R.Cache
	key := fmt.Sprintf(verifierKey, state)

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()

	var get *redis.StringCmd
	_, err := cache.TxPipelined(tcCtx, func(pipe redis.Pipeliner) error {
		get = pipe.Get(tcCtx, key)
		pipe.Del(tcCtx, key)
		return nil
	})
	if err != nil && err != redis.Nil {
		return "", fmt.Errorf("failed to take verifier from cache: %w", err)
	}

	v, err := get.Result()
	if err == redis.Nil {
		return "", nil
	}
	return v, err
}
