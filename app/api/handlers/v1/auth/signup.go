package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/private-notes/business/v1/auth"
	"github.com/ribgsilva/private-notes/platform/web/handler"
)

// SignUp godoc
// @Summary Register an account
// @Description Register email and password, the account has to be confirmed by email before signing in
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body auth.SignUpRequest true "Credentials"
// @Success 201 {object} auth.User
// @Failure 400 {object} handler.Error
// @Failure 422 {object} handler.Error
// @Router /v1/auth/signup [post]
func SignUp(ctx *gin.Context) handler.Result {
	var req auth.SignUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body"},
		}
	}

	u, err := auth.SignUp(ctx.Request.Context(), req)
	if err != nil {
		return failure(err)
	}
	return handler.Result{
		Status: http.StatusCreated,
		Body:   u,
	}
}
