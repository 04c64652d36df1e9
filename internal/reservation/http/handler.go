package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusbooking/room-booking-backend/internal/pkg/request"
	"github.com/campusbooking/room-booking-backend/internal/pkg/response"
	"github.com/campusbooking/room-booking-backend/internal/reservation"
)

type Handler struct {
	service reservation.Service
	loc     *time.Location
}

func NewHandler(service reservation.Service, loc *time.Location) *Handler {
	return &Handler{service: service, loc: loc}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateReservationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.service.Book(c.Request.Context(), reservation.BookRequest{
		ClassroomID:  body.ClassroomID,
		StudentEmail: body.StudentEmail,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
		IsPrivate:    body.IsPrivate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewReservationResponse(res))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	res, err := h.service.Get(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}

func (h *Handler) List(c *gin.Context) {
	var q ListReservationsRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := reservation.Filter{
		ClassroomID:  q.ClassroomID,
		StudentEmail: q.StudentEmail,
	}
	if q.Status != "" {
		filter.Statuses = []reservation.Status{reservation.Status(q.Status)}
	}
	if q.Date != "" {
		day, err := request.ParseDate(q.Date, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		filter.Day = day
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reservations"})
		return
	}

	resp := make([]ReservationResponse, len(items))
	for i, r := range items {
		resp[i] = NewReservationResponse(r)
	}
	c.JSON(http.StatusOK, response.NewListResponse(resp))
}

// Availability serves the dashboard: every room's status for a day, with an
// optional single-hour filter.
func (h *Handler) Availability(c *gin.Context) {
	var q AvailabilityRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	day, err := request.ParseDate(q.Date, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	statuses, err := h.service.DayStatuses(c.Request.Context(), day, q.Hour)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]RoomStatusResponse, len(statuses))
	for i, ra := range statuses {
		resp[i] = NewRoomStatusResponse(ra)
	}
	c.JSON(http.StatusOK, response.NewListResponse(resp))
}

// RoomAvailability reports one room's status, including fully blocked rooms.
func (h *Handler) RoomAvailability(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var q AvailabilityRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	day, err := request.ParseDate(q.Date, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	ra, err := h.service.RoomDayStatus(c.Request.Context(), uri.ID, day, q.Hour)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRoomStatusResponse(*ra))
}

func (h *Handler) CheckIn(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body CheckInRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.service.CheckIn(c.Request.Context(), uri.ID, body.StudentEmail)
	if err != nil {
		// "Too early" is a policy outcome carrying the opening instant, so
		// the page can tell the requester when to come back.
		var tooEarly *reservation.TooEarlyError
		if errors.As(err, &tooEarly) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":             tooEarly.Error(),
				"check_in_opens_at": tooEarly.OpensAt,
			})
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}
