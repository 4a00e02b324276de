package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what every api handler returns, the wrapper writes it as json
type Result struct {
	Status int
	Body   any
}

// Error is the body returned on failures
type Error struct {
	Message string `json:"message" example:"note not found"`
}

// Func is an api handler
type Func func(ctx *gin.Context) Result

// Wrapper adapts a Func into a gin.HandlerFunc
func Wrapper(f Func) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := f(ctx)
		if ctx.Writer.Written() {
			return
		}
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
