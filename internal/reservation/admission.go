package reservation

import (
	"strings"
	"time"
)

// Candidate is a reservation request under admission.
type Candidate struct {
	ClassroomID  string
	StudentEmail string
	StartTime    time.Time
	EndTime      time.Time
	IsPrivate    bool
}

// Validate rejects malformed candidates before any store access: wrong email
// domain, non-positive duration, duration above the cap, interval outside the
// day grid or the booking horizon. now is the current instant in the grid's
// reference timezone.
func (c Candidate) Validate(emailDomain string, now time.Time, loc *time.Location) error {
	if !strings.HasSuffix(strings.ToLower(c.StudentEmail), strings.ToLower(emailDomain)) {
		return ErrInvalidEmailDomain
	}

	start := c.StartTime.In(loc)
	end := c.EndTime.In(loc)

	if !end.After(start) {
		return ErrInvalidTimeRange
	}
	if end.Sub(start) > MaxDuration {
		return ErrDurationTooLong
	}

	// Bookings align to whole hours of a single day's grid.
	if !onWholeHour(start) || !onWholeHour(end) {
		return ErrOutsideDayGrid
	}
	if start.Hour() < GridOpenHour || start.Hour() >= GridCloseHour {
		return ErrOutsideDayGrid
	}
	// The grid closes at 22:00, so a valid end never crosses midnight.
	if !sameDay(start, end) || end.Hour() > GridCloseHour {
		return ErrOutsideDayGrid
	}

	// Horizon: today through 30 days ahead.
	today := DayStart(now, loc)
	day := DayStart(start, loc)
	if day.Before(today) || day.After(today.AddDate(0, 0, HorizonDays)) {
		return ErrOutsideHorizon
	}

	return nil
}

// Admit applies the admission rule to a candidate against a snapshot of
// non-terminal reservations overlapping its interval:
//   - any overlapping private reservation rejects the candidate;
//   - a private candidate requires the room completely free for the interval;
//   - a shared candidate is rejected once overlapping occupancy reached capacity.
//
// Returns nil on accept, ErrSlotUnavailable on reject. Pure decision; the
// caller persists on accept.
func Admit(c Candidate, capacity int, overlapping []*Reservation) error {
	occupancy := 0
	for _, r := range overlapping {
		if !r.Occupies() {
			continue
		}
		if !r.OverlapsInterval(c.StartTime, c.EndTime) {
			continue
		}
		if r.IsPrivate {
			return ErrSlotUnavailable
		}
		occupancy++
	}

	if c.IsPrivate {
		if occupancy > 0 {
			return ErrSlotUnavailable
		}
		// Private ignores capacity; a zero-capacity room is still
		// privately bookable.
		return nil
	}

	if occupancy >= capacity {
		return ErrSlotUnavailable
	}
	return nil
}

func onWholeHour(t time.Time) bool {
	return t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
