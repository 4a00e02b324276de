package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/private-notes/app/api/handlers/middleware"
	"github.com/ribgsilva/private-notes/business/v1/note"
	"github.com/ribgsilva/private-notes/platform/web/handler"
)

// Get godoc
// @Summary Find a note
// @Description Find a note of the signed in user using its id
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} note.Note
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [get]
func Get(ctx *gin.Context) handler.Result {
	found, err := note.Find(ctx.Request.Context(), middleware.Current(ctx), ctx.Param("id"))
	if err != nil {
		return failure(err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   found,
	}
}
