package auth

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"github.com/ribgsilva/private-notes/persistence/v1/session"
	"github.com/ribgsilva/private-notes/platform/supabase"
	"github.com/ribgsilva/private-notes/sys"
)

// ProviderURL returns where to send the browser to sign in with provider.
// The PKCE verifier is kept server side under a random state carried by the callback url.
func ProviderURL(ctx context.Context, provider string) (string, error) {
	if !enabled(provider) {
		return "", ErrUnknownProvider
	}

	verifier, err := supabase.NewVerifier()
	if err != nil {
		return "", err
	}
	state := uuid.NewString()
	if err := session.SaveVerifier(ctx, state, verifier); err != nil {
		sys.R.Log.Error("failure to start provider sign in: ", err)
		return "", err
	}

	callback := sys.Configs.Supabase.SiteURL + "/auth/callback?" + url.Values{"state": {state}}.Encode()
	return sys.R.Platform.AuthorizeURL(provider, callback, supabase.Challenge(verifier)), nil
}

// ExchangeCode completes a provider sign in started by ProviderURL
func ExchangeCode(ctx context.Context, state, code string) (Session, error) {
	if state == "" || code == "" {
		return Session{}, ErrInvalidState
	}

	verifier, err := session.TakeVerifier(ctx, state)
	if err != nil {
		sys.R.Log.Error("failure to load provider sign in: ", err)
		return Session{}, err
	}
	if verifier == "" {
		return Session{}, ErrInvalidState
	}

	ps, err := sys.R.Platform.ExchangeCode(ctx, code, verifier)
	if err != nil {
		sys.R.Log.Error("failure to exchange provider code: ", err)
		return Session{}, err
	}

	// the identity comes from the auth api, not from the token response
	ps.User, err = sys.R.Platform.GetUser(ctx, ps.AccessToken)
	if err != nil {
		sys.R.Log.Error("failure to load provider user: ", err)
		return Session{}, err
	}
	return start(ctx, ps)
}

func enabled(provider string) bool {
	for _, p := range sys.Configs.Supabase.Providers {
		if p == provider {
			return true
		}
	}
	return false
}
