package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/private-notes/app/api/handlers/middleware"
	"github.com/ribgsilva/private-notes/business/v1/auth"
	"github.com/ribgsilva/private-notes/platform/web/handler"
)

// SignIn godoc
// @Summary Sign in
// @Description Sign in with email and password, the session is bound to the response cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body auth.SignInRequest true "Credentials"
// @Success 200 {object} auth.State
// @Failure 400 {object} handler.Error
// @Router /v1/auth/signin [post]
func SignIn(ctx *gin.Context) handler.Result {
	var req auth.SignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body"},
		}
	}

	s, err := auth.SignIn(ctx.Request.Context(), req)
	if err != nil {
		return failure(err)
	}

	// a previous session of this browser is replaced
	if prev := middleware.Current(ctx); prev.ID != "" {
		_ = auth.Forget(ctx.Request.Context(), prev)
	}
	middleware.SetCookie(ctx, s)
	return handler.Result{
		Status: http.StatusOK,
		Body:   auth.StateOf(s),
	}
}
