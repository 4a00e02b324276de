package auth

import (
	"context"

	"github.com/ribgsilva/private-notes/persistence/v1/session"
	"github.com/ribgsilva/private-notes/sys"
)

// SignOut revokes the session on the platform and forgets it locally.
// A platform failure is logged, the local session is removed regardless.
func SignOut(ctx context.Context, s Session) error {
	if s.ID == "" {
		return nil
	}

	if s.AccessToken != "" {
		if err := sys.R.Platform.SignOut(ctx, s.AccessToken); err != nil {
			sys.R.Log.Warn("failure to revoke session on platform: ", err)
		}
	}
	return Forget(ctx, s)
}

// Forget drops the local session without touching the platform.
// Used when a browser signs in again: platform logout revokes every token
// of the user, the pair just issued included.
func Forget(ctx context.Context, s Session) error {
	if s.ID == "" {
		return nil
	}

	if err := session.Delete(ctx, s.ID); err != nil {
		sys.R.Log.Error("failure to sign out: ", err)
		return err
	}
	publish(ctx, EventSignedOut, s)
	return nil
}
