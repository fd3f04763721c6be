package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/slidesync/SlideBot/internal/container"
	"github.com/slidesync/SlideBot/pkg/config"
)

var started = time.Now()

func PingHandler(c *container.AppContainer) gin.HandlerFunc {
	return func(g *gin.Context) {
		res := map[string]any{
			"ping":   "pong",
			"nick":   config.Nick,
			"uptime": time.Since(started).Round(time.Second).String(),
		}
		g.JSON(http.StatusOK, res)
	}
}
