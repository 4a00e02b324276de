package session

import "time"

const (
	sessionKey  = "session.%s"
	verifierKey = "pkce.%s"
)

type Session struct {
	ID           string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	UserID       string
	Email        string
}
