package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/private-notes/app/api/handlers/middleware"
	"github.com/ribgsilva/private-notes/business/v1/note"
	"github.com/ribgsilva/private-notes/platform/web/handler"
)

// Delete godoc
// @Summary Delete a note
// @Description Delete a note of the signed in user. Deleting an unknown id succeeds.
// @Tags Note
// @Param id path string true "Note id"
// @Success 204
// @Failure 401 {object} handler.Error
// @Router /v1/notes/{id} [delete]
func Delete(ctx *gin.Context) handler.Result {
	if err := note.Delete(ctx.Request.Context(), middleware.Current(ctx), ctx.Param("id")); err != nil {
		return failure(err)
	}
	return handler.Result{Status: http.StatusNoContent}
}
