package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/private-notes/business/v1/auth"
	"github.com/ribgsilva/private-notes/business/v1/note"
	"github.com/ribgsilva/private-notes/platform/web/handler"
	"github.com/ribgsilva/private-notes/sys"
)

const sessionKey = "auth.session"

// Tracing hands the new relic transaction of the request to the outgoing platform calls
func Tracing() gin.HandlerFunc {
	return func(c *gin.Context) {
		if txn := nrgin.Transaction(c); txn != nil {
			c.Request = newrelic.RequestWithTransactionContext(c.Request, txn)
		}
		c.Next()
	}
}

// Session resolves the session cookie into the auth.Session of the request
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(sys.Configs.Cookie.Name)

		s, err := auth.Resolve(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, handler.Error{Message: "could not load session"})
			return
		}
		if id != "" && !s.Active() {
			ClearCookie(c)
		}

		c.Set(sessionKey, s)
		c.Next()
	}
}

// Current returns the session resolved by Session, empty when signed out
func Current(c *gin.Context) auth.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(auth.Session); ok {
			return s
		}
	}
	return auth.Session{}
}

// RequireAPI rejects requests without an active session
func RequireAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Current(c).Active() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.Error{Message: note.ErrNotAuthenticated.Error()})
			return
		}
		c.Next()
	}
}

// RequirePage sends browsers without an active session to the login page
func RequirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Current(c).Active() {
			Redirect(c, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Redirect navigates the browser to location, full page for htmx requests too
func Redirect(c *gin.Context, location string) {
	if IsHtmx(c) {
		c.Header("HX-Redirect", location)
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusSeeOther, location)
}

// IsHtmx reports whether the request was issued by htmx
func IsHtmx(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// SetCookie binds the browser to s
func SetCookie(c *gin.Context, s auth.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sys.Configs.Cookie.Name, s.ID, int(sys.Configs.Cookie.MaxAge.Seconds()), "/", "", sys.Configs.Cookie.Secure, true)
}

// ClearCookie unbinds the browser from any session
func ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sys.Configs.Cookie.Name, "", -1, "/", "", sys.Configs.Cookie.Secure, true)
}
