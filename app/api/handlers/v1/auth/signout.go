package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/private-notes/app/api/handlers/middleware"
	"github.com/ribgsilva/private-notes/business/v1/auth"
	"github.com/ribgsilva/private-notes/platform/web/handler"
)

// SignOut godoc
// @Summary Sign out
// @Description End the session of the cookie, succeeds without one
// @Tags Auth
// @Success 204
// @Failure 503 {object} handler.Error
// @Router /v1/auth/signout [post]
func SignOut(ctx *gin.Context) handler.Result {
	if err := auth.SignOut(ctx.Request.Context(), middleware.Current(ctx)); err != nil {
		return handler.Result{
			Status: http.StatusServiceUnavailable,
			Body:   handler.Error{Message: err.Error()},
		}
	}
	middleware.ClearCookie(ctx)
	return handler.Result{Status: http.StatusNoContent}
}
