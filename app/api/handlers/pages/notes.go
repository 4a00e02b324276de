package pages

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/private-notes/app/api/handlers/middleware"
	"github.com/ribgsilva/private-notes/business/v1/note"
	"github.com/ribgsilva/private-notes/sys"
)

type dashboardView struct {
	Page
	Notes []note.Note
}

type noteView struct {
	Page
	Note note.Note
}

// Dashboard lists the notes of the signed in user with the create form
func Dashboard(c *gin.Context) {
	v := dashboardView{Page: newPage(c, "My Notes")}

	notes, err := note.List(c.Request.Context(), middleware.Current(c))
	if err != nil {
		v.Error = err.Error()
		c.HTML(statusOf(err), "dashboard.html", v)
		return
	}
	v.Notes = notes
	c.HTML(http.StatusOK, "dashboard.html", v)
}

// CreateNote creates a note from the dashboard form and answers with its card
func CreateNote(c *gin.Context) {
	var nn note.NewNote
	if err := c.ShouldBind(&nn); err != nil {
		banner(c, errors.New("invalid form"))
		return
	}

	created, err := note.Create(c.Request.Context(), middleware.Current(c), nn)
	if err != nil {
		banner(c, err)
		return
	}
	c.HTML(http.StatusOK, "note_created", created)
}

// Note shows one note with its edit form, a missing or failing note sends the browser back to the dashboard
func Note(c *gin.Context) {
	found, err := note.Find(c.Request.Context(), middleware.Current(c), c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	v := noteView{Page: newPage(c, found.Title)}
	v.Note = found
	c.HTML(http.StatusOK, "note.html", v)
}

// UpdateNote saves the edit form and answers with the refreshed note
func UpdateNote(c *gin.Context) {
	var un note.UpdateNote
	if err := c.ShouldBind(&un); err != nil {
		banner(c, errors.New("invalid form"))
		return
	}

	updated, err := note.Update(c.Request.Context(), middleware.Current(c), c.Param("id"), un)
	if err != nil {
		banner(c, err)
		return
	}
	c.HTML(http.StatusOK, "note_saved", updated)
}

// DeleteNote deletes a note. The card asking for it is swapped by the empty answer,
// the note page asks with back set and is sent to the dashboard.
func DeleteNote(c *gin.Context) {
	if err := note.Delete(c.Request.Context(), middleware.Current(c), c.Param("id")); err != nil {
		banner(c, err)
		return
	}
	if c.Query("back") != "" {
		middleware.Redirect(c, "/dashboard")
		return
	}

	// the card goes away, the empty state comes back with the last one
	rest, err := note.List(c.Request.Context(), middleware.Current(c))
	if err != nil {
		sys.R.Log.Warn("failure to count remaining notes: ", err)
	}
	c.HTML(http.StatusOK, "note_deleted", err != nil || len(rest) > 0)
}
