package reservation

import (
	"net/http"
	"time"

	"github.com/campusbooking/room-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, apperror.KindNotFound, "reservation not found")
	ErrClassroomNotFound = apperror.New(http.StatusNotFound, apperror.KindNotFound, "classroom not found")

	ErrInvalidTimeRange   = apperror.New(http.StatusBadRequest, apperror.KindValidation, "end time must be after start time")
	ErrInvalidEmailDomain = apperror.New(http.StatusBadRequest, apperror.KindValidation, "email must belong to the organization domain")
	ErrDurationTooLong    = apperror.New(http.StatusBadRequest, apperror.KindValidation, "maximum booking duration is 3 hours")
	ErrOutsideDayGrid     = apperror.New(http.StatusBadRequest, apperror.KindValidation, "booking must fall on whole hours between 08:00 and 22:00")
	ErrOutsideHorizon     = apperror.New(http.StatusBadRequest, apperror.KindValidation, "bookings are only accepted up to 30 days ahead")

	// ErrSlotUnavailable is the admission rejection: a normal outcome, not a
	// fault. Callers should refresh availability and try a different slot.
	ErrSlotUnavailable = apperror.New(http.StatusConflict, apperror.KindRejection, "time slot is not available for the selected booking type")

	// ErrCheckInWindowExpired means matching reservations exist but every
	// check-in window has already closed.
	ErrCheckInWindowExpired = apperror.New(http.StatusUnprocessableEntity, apperror.KindPolicy, "check-in window has expired")
)

// TooEarlyError reports a check-in attempt before the window opens,
// carrying the instant at which check-in becomes possible.
type TooEarlyError struct {
	OpensAt time.Time
}

func (e *TooEarlyError) Error() string {
	return "check-in is not open yet"
}

// Status is the reservation lifecycle state. Transitions only move forward:
// reserved -> checked_in, or reserved -> expired.
type Status string

const (
	StatusReserved  Status = "reserved"
	StatusCheckedIn Status = "checked_in"
	StatusExpired   Status = "expired"
)

// Valid reports whether s is a known lifecycle state.
func (s Status) Valid() bool {
	return s == StatusReserved || s == StatusCheckedIn || s == StatusExpired
}

// Reservation represents a hold on a classroom for a time interval.
type Reservation struct {
	ID           string
	ClassroomID  string
	StudentEmail string
	StartTime    time.Time
	EndTime      time.Time
	IsPrivate    bool
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Occupies reports whether the reservation counts toward room occupancy.
// Expired reservations never block a slot.
func (r *Reservation) Occupies() bool {
	return r.Status == StatusReserved || r.Status == StatusCheckedIn
}

// Filter defines parameters for listing reservations.
type Filter struct {
	ClassroomID  string
	StudentEmail string
	Statuses     []Status
	// Day limits results to reservations starting within that calendar day
	// (in the grid's reference timezone). Zero value means no day filter.
	Day time.Time
}
