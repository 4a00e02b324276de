package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/private-notes/app/api/handlers/middleware"
	"github.com/ribgsilva/private-notes/app/api/handlers/pages"
	"github.com/ribgsilva/private-notes/app/api/handlers/v1/auth"
	"github.com/ribgsilva/private-notes/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/private-notes/app/api/handlers/v1/notes"
	"github.com/ribgsilva/private-notes/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine) {
	v1 := r.Group("/v1", middleware.Tracing(), middleware.Session())

	v1.POST("/auth/signup", handler.Wrapper(auth.SignUp))
	v1.POST("/auth/signin", handler.Wrapper(auth.SignIn))
	v1.POST("/auth/signout", handler.Wrapper(auth.SignOut))
	v1.GET("/auth/state", handler.Wrapper(auth.State))
	v1.GET("/auth/events", auth.Events)

	n := v1.Group("/notes", middleware.RequireAPI())
	n.GET("", handler.Wrapper(notes.List))
	n.POST("", handler.Wrapper(notes.Create))
	n.GET("/:id", handler.Wrapper(notes.Get))
	n.PUT("/:id", handler.Wrapper(notes.Update))
	n.DELETE("/:id", handler.Wrapper(notes.Delete))
}

// MapPages needs the templates of the views package installed on r
func MapPages(r *gin.Engine) {
	p := r.Group("/", middleware.Tracing(), middleware.Session())

	p.GET("/", pages.Index)
	p.GET("/login", pages.Login)
	p.POST("/login", pages.SignIn)
	p.GET("/signup", pages.Signup)
	p.POST("/signup", pages.SignUp)
	p.POST("/logout", pages.SignOut)
	p.GET("/auth/provider/:provider", pages.Provider)
	p.GET("/auth/callback", pages.Callback)

	in := p.Group("/", middleware.RequirePage())
	in.GET("/dashboard", pages.Dashboard)
	in.POST("/notes", pages.CreateNote)
	in.GET("/notes/:id", pages.Note)
	in.PUT("/notes/:id", pages.UpdateNote)
	in.DELETE("/notes/:id", pages.DeleteNote)
}
