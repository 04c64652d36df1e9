package classroom

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("classroom not found")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrInvalidCapacity = errors.New("capacity must not be negative")
)

// RoomType is the fixed category enumeration for classrooms.
type RoomType string

const (
	TypeMeetingRoom    RoomType = "meeting_room"
	TypeConferenceRoom RoomType = "conference_room"
	TypeComputerRoom   RoomType = "computer_room"
	TypeStudyRoom      RoomType = "study_room"
)

// Display returns the human-readable label for the room type.
// Unrecognized values fall back to plain "Room".
func (t RoomType) Display() string {
	switch t {
	case TypeMeetingRoom:
		return "Meeting Room"
	case TypeConferenceRoom:
		return "Conference Room"
	case TypeComputerRoom:
		return "Computer Room"
	case TypeStudyRoom:
		return "Study Room"
	default:
		return "Room"
	}
}

// Classroom represents a bookable room. Static reference data: immutable
// after creation as far as the booking flow is concerned.
type Classroom struct {
	ID       string
	Name     string
	Capacity int // max simultaneous shared occupants
	Building string
	RoomType RoomType

	CreatedAt time.Time
}

// Filter defines parameters for listing classrooms.
type Filter struct {
	Building string
	RoomType string
}
