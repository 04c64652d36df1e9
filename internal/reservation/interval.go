package reservation

import "time"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap, so
// back-to-back bookings are always compatible.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// OverlapsInterval reports whether the reservation's interval intersects
// [start, end).
func (r *Reservation) OverlapsInterval(start, end time.Time) bool {
	return Overlaps(r.StartTime, r.EndTime, start, end)
}
