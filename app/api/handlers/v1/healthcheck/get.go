package healthcheck

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/private-notes/platform/web/handler"
	"github.com/ribgsilva/private-notes/sys"
)

type Status struct {
	Status string `json:"status" example:"ok"`
	Cache  string `json:"cache" example:"ok"`
}

// Get godoc
// @Summary Health check
// @Description Reports whether the service and its session cache are up
// @Tags Health
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Failure 503 {object} healthcheck.Status
// @Router /v1/healthcheck [get]
func Get(ctx *gin.Context) handler.Result {
	c, cancel := context.WithTimeout(ctx.Request.Context(), sys.Configs.Cache.PingTimeout)
	defer cancel()

	if err := sys.R.Cache.Ping(c).Err(); err != nil {
		sys.R.Log.Warn("healthcheck: cache unavailable: ", err)
		return handler.Result{
			Status: http.StatusServiceUnavailable,
			Body:   Status{Status: "degraded", Cache: "unavailable"},
		}
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   Status{Status: "ok", Cache: "ok"},
	}
}
