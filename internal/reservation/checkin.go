package reservation

import "time"

// WindowContains reports whether now falls inside the check-in window of a
// reservation starting at start. Both window ends are inclusive.
func WindowContains(start, now time.Time) bool {
	opens, closes := CheckInWindow(start)
	return !now.Before(opens) && !now.After(closes)
}

// SelectCheckInCandidate picks the reservation to confirm out of the
// requester's pending reservations for a room, ordered by start time
// ascending: the first one whose check-in window contains now. Only one
// reservation can be checked in per call; overlapping windows resolve to the
// earliest start.
//
// When nothing matches:
//   - no pending reservations at all -> ErrNotFound;
//   - an upcoming reservation exists -> TooEarlyError with the instant its
//     window opens;
//   - otherwise every window has passed -> ErrCheckInWindowExpired.
func SelectCheckInCandidate(pending []*Reservation, now time.Time) (*Reservation, error) {
	if len(pending) == 0 {
		return nil, ErrNotFound
	}

	for _, r := range pending {
		if WindowContains(r.StartTime, now) {
			return r, nil
		}
	}

	for _, r := range pending {
		if r.StartTime.After(now) {
			opens, _ := CheckInWindow(r.StartTime)
			return nil, &TooEarlyError{OpensAt: opens}
		}
	}

	return nil, ErrCheckInWindowExpired
}
