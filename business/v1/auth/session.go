package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ribgsilva/private-notes/persistence/v1/session"
	"github.com/ribgsilva/private-notes/platform/supabase"
)

var now = time.Now

// start persists a fresh session for a platform token pair
func start(ctx context.Context, ps supabase.Session) (Session, error) {
	if ps.AccessToken == "" {
		return Session{}, ErrMissingCredential
	}
	s := fromPlatform(uuid.NewString(), ps)
	if err := save(ctx, s); err != nil {
		return Session{}, err
	}
	publish(ctx, EventSignedIn, s)
	return s, nil
}

func fromPlatform(id string, ps supabase.Session) Session {
	return Session{
		ID:           id,
		AccessToken:  ps.AccessToken,
		RefreshToken: ps.RefreshToken,
		ExpiresAt:    ps.Expiry(now()),
		User: User{
			ID:    ps.User.ID,
			Email: ps.User.Email,
		},
	}
}

func save(ctx context.Context, s Session) error {
	err := session.Save(ctx, session.Session{
		ID:           s.ID,
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    s.ExpiresAt,
		UserID:       s.User.ID,
		Email:        s.User.Email,
	})
	if err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

func load(ctx context.Context, id string) (Session, error) {
	found, err := session.Find(ctx, id)
	if err != nil {
		return Session{}, err
	}
	return Session{
		ID:           found.ID,
		AccessToken:  found.AccessToken,
		RefreshToken: found.RefreshToken,
		ExpiresAt:    found.ExpiresAt,
		User: User{
			ID:    found.UserID,
			Email: found.Email,
		},
	}, nil
}
