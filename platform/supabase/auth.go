package supabase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers a user, the platform sends the confirmation email and no session is returned to the caller
func (c *Client) SignUp(ctx context.Context, email, password, redirectTo string) (User, error) {
	var query url.Values
	if redirectTo != "" {
		query = url.Values{"redirect_to": {redirectTo}}
	}

	// with email confirmation enabled the body is the user, otherwise a session wrapping it
	var resp struct {
		User
		Nested *User `json:"user"`
	}
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   authPath + "/signup",
		query:  query,
		body:   credentials{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return User{}, err
	}
	if resp.Nested != nil {
		return *resp.Nested, nil
	}
	return resp.User, nil
}

// SignInWithPassword exchanges email and password for a session
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (Session, error) {
	return c.token(ctx, "password", credentials{Email: email, Password: password})
}

// RefreshSession exchanges a refresh token for a new session
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (Session, error) {
	return c.token(ctx, "refresh_token", map[string]string{"refresh_token": refreshToken})
}

// ExchangeCode completes a provider sign in, verifier is the one whose challenge was sent to AuthorizeURL
func (c *Client) ExchangeCode(ctx context.Context, code, verifier string) (Session, error) {
	return c.token(ctx, "pkce", map[string]string{
		"auth_code":     code,
		"code_verifier": verifier,
	})
}

func (c *Client) token(ctx context.Context, grant string, body any) (Session, error) {
	var s Session
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   authPath + "/token",
		query:  url.Values{"grant_type": {grant}},
		body:   body,
	}, &s)
	return s, err
}

// AuthorizeURL is where the browser goes to sign in with an oauth provider
func (c *Client) AuthorizeURL(provider, redirectTo, challenge string) string {
	u := *c.baseURL
	u.Path += authPath + "/authorize"
	q := url.Values{"provider": {provider}}
	if redirectTo != "" {
		q.Set("redirect_to", redirectTo)
	}
	if challenge != "" {
		q.Set("code_challenge", challenge)
		q.Set("code_challenge_method", "s256")
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// GetUser returns the user owning the access token
func (c *Client) GetUser(ctx context.Context, accessToken string) (User, error) {
	var u User
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   authPath + "/user",
		token:  accessToken,
	}, &u)
	return u, err
}

// SignOut revokes the refresh tokens of the session owning the access token
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   authPath + "/logout",
		token:  accessToken,
	}, nil)
}

// NewVerifier returns a random PKCE code verifier
func NewVerifier() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate verifier: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Challenge derives the s256 PKCE code challenge of a verifier
func Challenge(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
