package auth

import (
	"context"
	"strings"

	"github.com/ribgsilva/private-notes/sys"
)

// SignUp registers the user and starts the email confirmation flow, no session is created
func SignUp(ctx context.Context, req SignUpRequest) (User, error) {
	email := strings.TrimSpace(req.Email)
	switch {
	case email == "":
		return User{}, ErrEmailRequired
	case req.Password != req.ConfirmPassword:
		return User{}, ErrPasswordMismatch
	case len(req.Password) < minPasswordLength:
		return User{}, ErrPasswordTooShort
	}

	u, err := sys.R.Platform.SignUp(ctx, email, req.Password, sys.Configs.Supabase.SiteURL+"/login")
	if err != nil {
		sys.R.Log.Error("failure to sign up: ", err)
		return User{}, err
	}
	return User{ID: u.ID, Email: u.Email}, nil
}
