package reservation

import "time"

// The bookable day grid is fixed for every room: 14 one-hour slots from
// 08:00 to 22:00 in the configured reference timezone.
const (
	GridOpenHour  = 8
	GridCloseHour = 22
	SlotsPerDay   = GridCloseHour - GridOpenHour

	// MaxDuration caps a single reservation.
	MaxDuration = 3 * time.Hour

	// HorizonDays is how far ahead bookings are accepted, today included.
	HorizonDays = 30
)

// Check-in window: [start - 5min, start + 15min], inclusive both ends.
// The grace period also drives expiry of no-show reservations.
const (
	CheckInEarly = 5 * time.Minute
	CheckInGrace = 15 * time.Minute
)

// DayStart returns midnight of t's calendar day in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// SlotBounds returns the [start, end) interval of the given hour slot on day.
func SlotBounds(day time.Time, hour int, loc *time.Location) (time.Time, time.Time) {
	y, m, d := day.In(loc).Date()
	start := time.Date(y, m, d, hour, 0, 0, 0, loc)
	return start, start.Add(time.Hour)
}

// GridHours enumerates the bookable start hours (8 through 21).
func GridHours() []int {
	hours := make([]int, SlotsPerDay)
	for i := range hours {
		hours[i] = GridOpenHour + i
	}
	return hours
}

// CheckInWindow returns the inclusive window during which a reservation
// starting at start can be checked in.
func CheckInWindow(start time.Time) (opens, closes time.Time) {
	return start.Add(-CheckInEarly), start.Add(CheckInGrace)
}

// CheckInDeadline is the instant after which an unconfirmed reservation is
// considered a no-show. Expiry is driven by this deadline, not the
// reservation's end time.
func CheckInDeadline(start time.Time) time.Time {
	return start.Add(CheckInGrace)
}
