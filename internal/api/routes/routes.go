package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/slidesync/SlideBot/internal/api/handlers"
	"github.com/slidesync/SlideBot/internal/container"
)

func RegisterRoutes(r *gin.Engine, c *container.AppContainer) {
	api := r.Group("/api")
	{
		api.GET("/ping", handlers.PingHandler(c))
		api.GET("/deliveries", handlers.ListDeliveriesHandler(c))
		api.GET("/deliveries/:channel", handlers.ChannelDeliveriesHandler(c))
	}
}
