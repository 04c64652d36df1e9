package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campusbooking/room-booking-backend/internal/classroom"
	"github.com/campusbooking/room-booking-backend/internal/pkg/response"
)

type Handler struct {
	service classroom.Service
}

func NewHandler(service classroom.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var q ListClassroomsRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := classroom.Filter{
		Building: q.Building,
		RoomType: q.RoomType,
	}

	rooms, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list classrooms"})
		return
	}

	items := make([]ClassroomResponse, len(rooms))
	for i, room := range rooms {
		items[i] = NewResponse(room)
	}

	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	room, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, classroom.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "classroom not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get classroom"})
		return
	}

	c.JSON(http.StatusOK, NewResponse(room))
}
