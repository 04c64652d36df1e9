package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers classroom-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/classrooms")
	{
		group.GET("", h.List)    // List classrooms
		group.GET("/:id", h.Get) // Get classroom details
	}
}
