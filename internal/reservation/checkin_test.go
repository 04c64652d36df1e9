package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func pendingAt(hour, minute int) *Reservation {
	start := time.Date(2026, 9, 15, hour, minute, 0, 0, time.UTC)
	return &Reservation{
		ID:           start.Format("15:04"),
		ClassroomID:  "room-1",
		StudentEmail: "student@alumni.esade.edu",
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		Status:       StatusReserved,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 9, 15, hour, minute, 0, 0, time.UTC)
}

func TestSelectCheckInCandidate_Window(t *testing.T) {
	// One reservation starting at 09:00; walk every window edge.
	pending := []*Reservation{pendingAt(9, 0)}

	t.Run("within pre-window at 08:56", func(t *testing.T) {
		got, err := SelectCheckInCandidate(pending, at(8, 56))
		require.NoError(t, err)
		require.Equal(t, pending[0], got)
	})

	t.Run("window opens exactly at 08:55", func(t *testing.T) {
		got, err := SelectCheckInCandidate(pending, at(8, 55))
		require.NoError(t, err)
		require.Equal(t, pending[0], got)
	})

	t.Run("window closes exactly at 09:15", func(t *testing.T) {
		got, err := SelectCheckInCandidate(pending, at(9, 15))
		require.NoError(t, err)
		require.Equal(t, pending[0], got)
	})

	t.Run("expired at 09:16", func(t *testing.T) {
		_, err := SelectCheckInCandidate(pending, at(9, 16))
		require.ErrorIs(t, err, ErrCheckInWindowExpired)
	})

	t.Run("too early at 08:50 reports opening at 08:55", func(t *testing.T) {
		_, err := SelectCheckInCandidate(pending, at(8, 50))

		var tooEarly *TooEarlyError
		require.ErrorAs(t, err, &tooEarly)
		require.Equal(t, at(8, 55), tooEarly.OpensAt)
	})
}

func TestSelectCheckInCandidate_NoPending(t *testing.T) {
	_, err := SelectCheckInCandidate(nil, at(9, 0))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSelectCheckInCandidate_EarliestWins(t *testing.T) {
	// Overlapping windows resolve to the earliest start; the snapshot
	// arrives ordered by start time ascending.
	pending := []*Reservation{pendingAt(9, 0), pendingAt(9, 10)}

	got, err := SelectCheckInCandidate(pending, at(9, 7))
	require.NoError(t, err)
	require.Equal(t, pending[0], got)
}

func TestSelectCheckInCandidate_SkipsPastWindows(t *testing.T) {
	// The 08:00 window has closed; the 14:00 one has not opened.
	pending := []*Reservation{pendingAt(8, 0), pendingAt(14, 0)}

	_, err := SelectCheckInCandidate(pending, at(10, 0))

	var tooEarly *TooEarlyError
	require.ErrorAs(t, err, &tooEarly)
	require.Equal(t, at(13, 55), tooEarly.OpensAt)
}

func TestSelectCheckInCandidate_AllWindowsPassed(t *testing.T) {
	pending := []*Reservation{pendingAt(8, 0), pendingAt(9, 0)}

	_, err := SelectCheckInCandidate(pending, at(12, 0))
	require.ErrorIs(t, err, ErrCheckInWindowExpired)
}
