package auth

import (
	"context"
	"strings"

	"github.com/ribgsilva/private-notes/sys"
)

// SignIn establishes and persists a session for email and password
func SignIn(ctx context.Context, req SignInRequest) (Session, error) {
	email := strings.TrimSpace(req.Email)
	switch {
	case email == "":
		return Session{}, ErrEmailRequired
	case req.Password == "":
		return Session{}, ErrPasswordRequired
	}

	ps, err := sys.R.Platform.SignInWithPassword(ctx, email, req.Password)
	if err != nil {
		sys.R.Log.Error("failure to sign in: ", err)
		return Session{}, err
	}
	return start(ctx, ps)
}
