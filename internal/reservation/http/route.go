package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers reservation-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/reservations")
	{
		group.GET("", h.List)    // List reservations
		group.GET("/:id", h.Get) // Get reservation details
		group.POST("", h.Create) // Book a room (admission controlled)
	}

	// Availability views and the per-room check-in page live under the
	// classroom path to mirror how the dashboard addresses rooms.
	g.GET("/availability", h.Availability)
	g.GET("/classrooms/:id/availability", h.RoomAvailability)
	g.POST("/classrooms/:id/checkin", h.CheckIn)
}
