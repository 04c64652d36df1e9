package http

import (
	"time"

	"github.com/campusbooking/room-booking-backend/internal/classroom"
)

// ListClassroomsRequest defines query parameters for listing classrooms.
type ListClassroomsRequest struct {
	Building string `form:"building"`
	RoomType string `form:"room_type" binding:"omitempty,oneof=meeting_room conference_room computer_room study_room"`
}

type ClassroomResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Capacity        int       `json:"capacity"`
	Building        string    `json:"building"`
	RoomType        string    `json:"room_type"`
	RoomTypeDisplay string    `json:"room_type_display"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewResponse(room *classroom.Classroom) ClassroomResponse {
	return ClassroomResponse{
		ID:              room.ID,
		Name:            room.Name,
		Capacity:        room.Capacity,
		Building:        room.Building,
		RoomType:        string(room.RoomType),
		RoomTypeDisplay: room.RoomType.Display(),
		CreatedAt:       room.CreatedAt,
	}
}

// ClassroomTag is the compact form embedded in other modules' responses.
type ClassroomTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
