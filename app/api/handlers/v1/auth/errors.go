package auth

import (
	"errors"
	"net/http"

	"github.com/ribgsilva/private-notes/business/v1/auth"
	"github.com/ribgsilva/private-notes/platform/supabase"
	"github.com/ribgsilva/private-notes/platform/web/handler"
)

// failure maps an error of the auth operations into its response
func failure(err error) handler.Result {
	status := http.StatusBadGateway
	switch {
	case auth.IsValidation(err):
		status = http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidState):
		status = http.StatusBadRequest
	case supabase.StatusOf(err) >= 400 && supabase.StatusOf(err) < 500:
		status = supabase.StatusOf(err)
	}
	return handler.Result{
		Status: status,
		Body:   handler.Error{Message: err.Error()},
	}
}
