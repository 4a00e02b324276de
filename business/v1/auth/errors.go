package auth

import "errors"

const minPasswordLength = 6

var (
	ErrEmailRequired     = errors.New("email is required")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters")
	ErrPasswordRequired  = errors.New("password is required")
	ErrUnknownProvider   = errors.New("sign in provider is not enabled")
	ErrInvalidState      = errors.New("sign in link is invalid or expired")
	ErrMissingCredential = errors.New("sign in did not return a session")
)

// IsValidation reports whether err was raised before any remote call because of bad input
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmailRequired) ||
		errors.Is(err, ErrPasswordMismatch) ||
		errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrPasswordRequired) ||
		errors.Is(err, ErrUnknownProvider)
}
