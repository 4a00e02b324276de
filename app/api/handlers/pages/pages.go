// Package pages serves the html pages of the app and the fragments htmx swaps into them.
package pages

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/private-notes/app/api/handlers/middleware"
	"github.com/ribgsilva/private-notes/business/v1/auth"
	"github.com/ribgsilva/private-notes/business/v1/note"
	"github.com/ribgsilva/private-notes/platform/supabase"
)

// Page is the data every page template reads
type Page struct {
	Title string
	User  *auth.User
	Error string
}

func newPage(c *gin.Context, title string) Page {
	return Page{
		Title: title,
		User:  auth.StateOf(middleware.Current(c)).User,
	}
}

// Index sends the browser to where its session belongs
func Index(c *gin.Context) {
	if middleware.Current(c).Active() {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

// banner swaps the error banner of the page instead of the requested target
func banner(c *gin.Context, err error) {
	c.Header("HX-Retarget", "#banner")
	c.Header("HX-Reswap", "innerHTML")
	c.HTML(http.StatusOK, "banner", err.Error())
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, note.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, note.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case note.IsValidation(err), auth.IsValidation(err), errors.Is(err, auth.ErrInvalidState):
		return http.StatusBadRequest
	}
	if s := supabase.StatusOf(err); s >= 400 && s < 500 {
		return s
	}
	return http.StatusBadGateway
}
