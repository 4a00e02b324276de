package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/private-notes/app/api/handlers/middleware"
	"github.com/ribgsilva/private-notes/business/v1/auth"
	"github.com/ribgsilva/private-notes/sys"
)

const defaultKeepAlive = 15 * time.Second

// Events godoc
// @Summary Auth state stream
// @Description Server sent events with the auth state of the session cookie. The current state is sent first,
// @Description then one "state" event per change. The stream ends once the session signs out.
// @Tags Auth
// @Produce text/event-stream
// @Success 200 {object} auth.State
// @Router /v1/auth/events [get]
func Events(ctx *gin.Context) {
	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("X-Accel-Buffering", "no")

	s := middleware.Current(ctx)
	if !s.Active() {
		ctx.SSEvent("state", auth.StateOf(s))
		ctx.Writer.Flush()
		return
	}

	// subscribed before the first state, no change can fall in between
	events, unsubscribe := auth.Subscribe(s.ID)
	defer unsubscribe()

	ctx.SSEvent("state", auth.StateOf(s))
	ctx.Writer.Flush()

	every := sys.Configs.Events.KeepAlive
	if every <= 0 {
		every = defaultKeepAlive
	}
	keepAlive := time.NewTicker(every)
	defer keepAlive.Stop()

	done := ctx.Request.Context().Done()
	for {
		select {
		case <-done:
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			state := e.State()
			ctx.SSEvent("state", state)
			ctx.Writer.Flush()
			if state.User == nil {
				return
			}
		case <-keepAlive.C:
			ctx.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
			ctx.Writer.Flush()
		}
	}
}
