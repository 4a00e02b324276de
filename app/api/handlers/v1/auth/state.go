package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/private-notes/app/api/handlers/middleware"
	"github.com/ribgsilva/private-notes/business/v1/auth"
	"github.com/ribgsilva/private-notes/platform/web/handler"
)

// State godoc
// @Summary Current auth state
// @Description Who is signed in with the session cookie, user is null when nobody is
// @Tags Auth
// @Produce json
// @Success 200 {object} auth.State
// @Router /v1/auth/state [get]
func State(ctx *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   auth.StateOf(middleware.Current(ctx)),
	}
}
