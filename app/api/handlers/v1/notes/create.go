package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/private-notes/app/api/handlers/middleware"
	"github.com/ribgsilva/private-notes/business/v1/note"
	"github.com/ribgsilva/private-notes/platform/web/handler"
)

// Create godoc
// @Summary Create a note
// @Description Create a note owned by the signed in user
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note to create"
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Router /v1/notes [post]
func Create(ctx *gin.Context) handler.Result {
	var nn note.NewNote
	if err := ctx.ShouldBindJSON(&nn); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body"},
		}
	}

	created, err := note.Create(ctx.Request.Context(), middleware.Current(ctx), nn)
	if err != nil {
		return failure(err)
	}
	return handler.Result{
		Status: http.StatusCreated,
		Body:   created,
	}
}
