package auth

import "time"

type User struct {
	ID    string `json:"id" example:"5d1c2b9e-1f7a-4c3e-8b6d-9a0e7f4c2d11"`
	Email string `json:"email" example:"ana@example.com"`
}

// Session is the proof of authentication of one browser, identified by ID in the session cookie
type Session struct {
	ID           string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         User
}

// Active reports whether the session carries a signed in user
func (s Session) Active() bool {
	return s.AccessToken != "" && s.User.ID != ""
}

type Status string

const (
	StatusLoading  Status = "loading"
	StatusResolved Status = "resolved"
)

// State is who is signed in, User is nil once resolved without a session
type State struct {
	Status Status `json:"status" example:"resolved"`
	User   *User  `json:"user"`
}

// StateOf returns the resolved state of s
func StateOf(s Session) State {
	if !s.Active() {
		return State{Status: StatusResolved}
	}
	u := s.User
	return State{Status: StatusResolved, User: &u}
}

type SignUpRequest struct {
	Email           string `json:"email" form:"email" example:"ana@example.com"`
	Password        string `json:"password" form:"password" example:"secret123"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" example:"secret123"`
}

type SignInRequest struct {
	Email    string `json:"email" form:"email" example:"ana@example.com"`
	Password string `json:"password" form:"password" example:"secret123"`
}
