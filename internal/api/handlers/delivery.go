package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/slidesync/SlideBot/internal/container"
)

const defaultLimit = 50

func limitFrom(g *gin.Context) int {
	limit, err := strconv.Atoi(g.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > 500 {
		return defaultLimit
	}
	return limit
}

func ListDeliveriesHandler(c *container.AppContainer) gin.HandlerFunc {
	return func(g *gin.Context) {
		recs, err := c.DeliveryRepo.Recent(g.Request.Context(), limitFrom(g))
		if err != nil {
			g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		g.JSON(http.StatusOK, recs)
	}
}

func ChannelDeliveriesHandler(c *container.AppContainer) gin.HandlerFunc {
	return func(g *gin.Context) {
		channel := g.Param("channel")
		recs, err := c.DeliveryRepo.ByChannel(g.Request.Context(), channel, limitFrom(g))
		if err != nil {
			g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		g.JSON(http.StatusOK, recs)
	}
}
