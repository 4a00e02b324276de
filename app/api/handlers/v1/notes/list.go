package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/private-notes/app/api/handlers/middleware"
	"github.com/ribgsilva/private-notes/business/v1/note"
	"github.com/ribgsilva/private-notes/platform/web/handler"
)

// List godoc
// @Summary List notes
// @Description List the notes of the signed in user, newest first
// @Tags Note
// @Produce json
// @Success 200 {array} note.Note
// @Failure 401 {object} handler.Error
// @Failure 502 {object} handler.Error
// @Router /v1/notes [get]
func List(ctx *gin.Context) handler.Result {
	notes, err := note.List(ctx.Request.Context(), middleware.Current(ctx))
	if err != nil {
		return failure(err)
	}
	if notes == nil {
		notes = []note.Note{}
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   notes,
	}
}
