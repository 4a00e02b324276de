package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/private-notes/app/api/handlers/middleware"
	"github.com/ribgsilva/private-notes/business/v1/note"
	"github.com/ribgsilva/private-notes/platform/web/handler"
)

// Update godoc
// @Summary Update a note
// @Description Replace the title and content of a note of the signed in user
// @Tags Note
// @Accept json
// @Produce json
// @Param id path string true "Note id"
// @Param note body note.UpdateNote true "New title and content"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [put]
func Update(ctx *gin.Context) handler.Result {
	var un note.UpdateNote
	if err := ctx.ShouldBindJSON(&un); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body"},
		}
	}

	updated, err := note.Update(ctx.Request.Context(), middleware.Current(ctx), ctx.Param("id"), un)
	if err != nil {
		return failure(err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   updated,
	}
}
