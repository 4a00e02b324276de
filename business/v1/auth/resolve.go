package auth

import (
	"context"
	"net/http"

	"github.com/ribgsilva/private-notes/persistence/v1/session"
	"github.com/ribgsilva/private-notes/platform/supabase"
	"github.com/ribgsilva/private-notes/sys"
)

// Resolve loads the persisted session with id, refreshing it when it is about to expire.
// An unknown id, or a session the platform refuses to refresh, resolves to an empty Session.
// When the platform cannot be reached the session is kept and the error returned.
func Resolve(ctx context.Context, id string) (Session, error) {
	if id == "" {
		return Session{}, nil
	}

	s, err := load(ctx, id)
	if err != nil {
		sys.R.Log.Error("failure to load session: ", err)
		return Session{}, err
	}
	if !s.Active() {
		return Session{}, nil
	}

	if now().Add(sys.Configs.Supabase.RefreshMargin).Before(s.ExpiresAt) {
		return s, nil
	}

	ps, err := sys.R.Platform.RefreshSession(ctx, s.RefreshToken)
	if err != nil && !refused(err) {
		sys.R.Log.Error("failure to refresh session: ", err)
		return Session{}, err
	}
	if err != nil {
		sys.R.Log.Warn("failure to refresh session, signing out: ", err)
		if err := session.Delete(ctx, s.ID); err != nil {
			sys.R.Log.Error("failure to drop session: ", err)
		}
		publish(ctx, EventSignedOut, s)
		return Session{}, nil
	}

	refreshed := fromPlatform(s.ID, ps)
	if err := save(ctx, refreshed); err != nil {
		sys.R.Log.Error("failure to save refreshed session: ", err)
		return Session{}, err
	}
	publish(ctx, EventTokenRefreshed, refreshed)
	return refreshed, nil
}

// refused reports whether the platform rejected the refresh token itself
func refused(err error) bool {
	status := supabase.StatusOf(err)
	return status >= http.StatusBadRequest && status < http.StatusInternalServerError
}
