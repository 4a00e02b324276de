package notes

import (
	"errors"
	"net/http"

	"github.com/ribgsilva/private-notes/business/v1/note"
	"github.com/ribgsilva/private-notes/platform/supabase"
	"github.com/ribgsilva/private-notes/platform/web/handler"
)

// failure maps an error of the note operations into its response
func failure(err error) handler.Result {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, note.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, note.ErrNotFound):
		status = http.StatusNotFound
	case note.IsValidation(err):
		status = http.StatusBadRequest
	case supabase.StatusOf(err) == http.StatusBadRequest,
		supabase.StatusOf(err) == http.StatusUnauthorized,
		supabase.StatusOf(err) == http.StatusForbidden:
		status = supabase.StatusOf(err)
	}
	return handler.Result{
		Status: status,
		Body:   handler.Error{Message: err.Error()},
	}
}
