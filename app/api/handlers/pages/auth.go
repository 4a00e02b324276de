package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/private-notes/app/api/handlers/middleware"
	"github.com/ribgsilva/private-notes/business/v1/auth"
	"github.com/ribgsilva/private-notes/sys"
)

type authView struct {
	Page
	Email     string
	Providers []string
}

func newAuthView(c *gin.Context, title string) authView {
	return authView{
		Page:      newPage(c, title),
		Providers: sys.Configs.Supabase.Providers,
	}
}

// Login shows the sign in form
func Login(c *gin.Context) {
	if middleware.Current(c).Active() {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", newAuthView(c, "Sign In"))
}

// SignIn signs in with the login form
func SignIn(c *gin.Context) {
	v := newAuthView(c, "Sign In")

	var req auth.SignInRequest
	_ = c.ShouldBind(&req)
	v.Email = req.Email

	s, err := auth.SignIn(c.Request.Context(), req)
	if err != nil {
		v.Error = err.Error()
		c.HTML(statusOf(err), "login.html", v)
		return
	}
	begin(c, s)
}

// Signup shows the registration form
func Signup(c *gin.Context) {
	if middleware.Current(c).Active() {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "signup.html", newAuthView(c, "Create Account"))
}

// SignUp registers the signup form and asks for the email confirmation
func SignUp(c *gin.Context) {
	v := newAuthView(c, "Create Account")

	var req auth.SignUpRequest
	_ = c.ShouldBind(&req)
	v.Email = req.Email

	u, err := auth.SignUp(c.Request.Context(), req)
	if err != nil {
		v.Error = err.Error()
		c.HTML(statusOf(err), "signup.html", v)
		return
	}

	v.Title = "Check Your Email"
	v.Email = u.Email
	c.HTML(http.StatusOK, "signup_done.html", v)
}

// SignOut ends the session of the browser
func SignOut(c *gin.Context) {
	if err := auth.SignOut(c.Request.Context(), middleware.Current(c)); err != nil {
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}
	middleware.ClearCookie(c)
	middleware.Redirect(c, "/login")
}

// Provider starts a sign in with an oauth provider
func Provider(c *gin.Context) {
	to, err := auth.ProviderURL(c.Request.Context(), c.Param("provider"))
	if err != nil {
		v := newAuthView(c, "Sign In")
		v.Error = err.Error()
		c.HTML(statusOf(err), "login.html", v)
		return
	}
	c.Redirect(http.StatusFound, to)
}

// Callback completes a provider sign in
func Callback(c *gin.Context) {
	v := newAuthView(c, "Sign In")

	if desc := c.Query("error_description"); desc != "" {
		v.Error = desc
		c.HTML(http.StatusUnauthorized, "login.html", v)
		return
	}

	s, err := auth.ExchangeCode(c.Request.Context(), c.Query("state"), c.Query("code"))
	if err != nil {
		v.Error = err.Error()
		c.HTML(statusOf(err), "login.html", v)
		return
	}
	begin(c, s)
}

// begin binds the browser to a new session, replacing the one it had
func begin(c *gin.Context, s auth.Session) {
	if prev := middleware.Current(c); prev.ID != "" {
		_ = auth.Forget(c.Request.Context(), prev)
	}
	middleware.SetCookie(c, s)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
