package http

import (
	"time"

	classroomHttp "github.com/campusbooking/room-booking-backend/internal/classroom/http"
	"github.com/campusbooking/room-booking-backend/internal/reservation"
)

// CreateReservationRequest is the booking candidate as it arrives on the wire.
type CreateReservationRequest struct {
	ClassroomID  string    `json:"classroom_id" binding:"required,uuid"`
	StudentEmail string    `json:"student_email" binding:"required,email"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
	IsPrivate    bool      `json:"is_private"`
}

// Validate performs custom validation for CreateReservationRequest.
func (r *CreateReservationRequest) Validate() error {
	if !r.EndTime.After(r.StartTime) {
		return reservation.ErrInvalidTimeRange
	}
	return nil
}

// ListReservationsRequest defines query parameters for listing reservations.
type ListReservationsRequest struct {
	ClassroomID  string `form:"classroom_id" binding:"omitempty,uuid"`
	StudentEmail string `form:"student_email" binding:"omitempty,email"`
	Status       string `form:"status" binding:"omitempty,oneof=reserved checked_in expired"`
	Date         string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// AvailabilityRequest defines query parameters for the availability views.
type AvailabilityRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
	Hour *int   `form:"hour" binding:"omitempty,min=8,max=21"`
}

// CheckInRequest carries the requester email confirming a reservation.
type CheckInRequest struct {
	StudentEmail string `json:"student_email" binding:"required,email"`
}

type ReservationResponse struct {
	ID           string    `json:"id"`
	ClassroomID  string    `json:"classroom_id"`
	StudentEmail string    `json:"student_email"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	IsPrivate    bool      `json:"is_private"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           r.ID,
		ClassroomID:  r.ClassroomID,
		StudentEmail: r.StudentEmail,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		IsPrivate:    r.IsPrivate,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type HourSlotResponse struct {
	Hour      int    `json:"hour"`
	State     string `json:"state"`
	Occupancy int    `json:"occupancy"`
}

type RoomStatusResponse struct {
	Classroom       classroomHttp.ClassroomTag `json:"classroom"`
	Capacity        int                        `json:"capacity"`
	Building        string                     `json:"building"`
	RoomType        string                     `json:"room_type"`
	RoomTypeDisplay string                     `json:"room_type_display"`
	Status          string                     `json:"status"`
	Slots           []HourSlotResponse         `json:"slots"`
}

func NewRoomStatusResponse(ra reservation.RoomAvailability) RoomStatusResponse {
	slots := make([]HourSlotResponse, len(ra.Availability.Slots))
	for i, s := range ra.Availability.Slots {
		slots[i] = HourSlotResponse{
			Hour:      s.Hour,
			State:     string(s.State),
			Occupancy: s.Occupancy,
		}
	}

	return RoomStatusResponse{
		Classroom:       classroomHttp.ClassroomTag{ID: ra.Classroom.ID, Name: ra.Classroom.Name},
		Capacity:        ra.Classroom.Capacity,
		Building:        ra.Classroom.Building,
		RoomType:        string(ra.Classroom.RoomType),
		RoomTypeDisplay: ra.Classroom.RoomType.Display(),
		Status:          string(ra.Availability.Status),
		Slots:           slots,
	}
}
