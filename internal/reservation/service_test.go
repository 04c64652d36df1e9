package reservation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campusbooking/room-booking-backend/internal/classroom"
)

// fakeRepo is an in-memory Repository honoring the same admission and expiry
// semantics as the pgx implementation.
type fakeRepo struct {
	reservations []*Reservation
	nextID       int
	expireCalls  int
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Reservation, error) {
	for _, r := range f.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) List(_ context.Context, filter Filter) ([]*Reservation, error) {
	var out []*Reservation
	for _, r := range f.reservations {
		if filter.ClassroomID != "" && r.ClassroomID != filter.ClassroomID {
			continue
		}
		if filter.StudentEmail != "" && r.StudentEmail != filter.StudentEmail {
			continue
		}
		if len(filter.Statuses) > 0 {
			match := false
			for _, s := range filter.Statuses {
				if r.Status == s {
					match = true
				}
			}
			if !match {
				continue
			}
		}
		if !filter.Day.IsZero() {
			if r.StartTime.Before(filter.Day) || !r.StartTime.Before(filter.Day.AddDate(0, 0, 1)) {
				continue
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRepo) CreateAdmitted(_ context.Context, c Candidate, capacity int) (*Reservation, error) {
	var overlapping []*Reservation
	for _, r := range f.reservations {
		if r.ClassroomID == c.ClassroomID && r.Occupies() && r.OverlapsInterval(c.StartTime, c.EndTime) {
			overlapping = append(overlapping, r)
		}
	}
	if err := Admit(c, capacity, overlapping); err != nil {
		return nil, err
	}

	f.nextID++
	r := &Reservation{
		ID:           fmt.Sprintf("res-%d", f.nextID),
		ClassroomID:  c.ClassroomID,
		StudentEmail: c.StudentEmail,
		StartTime:    c.StartTime,
		EndTime:      c.EndTime,
		IsPrivate:    c.IsPrivate,
		Status:       StatusReserved,
	}
	f.reservations = append(f.reservations, r)
	return r, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	for _, r := range f.reservations {
		if r.ID == id && r.Status == StatusReserved {
			r.Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) ExpireOverdue(_ context.Context, now time.Time) (int64, error) {
	f.expireCalls++
	var n int64
	for _, r := range f.reservations {
		if r.Status == StatusReserved && CheckInDeadline(r.StartTime).Before(now) {
			r.Status = StatusExpired
			n++
		}
	}
	return n, nil
}

type fakeRoomService struct {
	rooms map[string]*classroom.Classroom
}

func (f *fakeRoomService) Create(context.Context, classroom.CreateRequest) (*classroom.Classroom, error) {
	panic("not used")
}

func (f *fakeRoomService) GetByID(_ context.Context, id string) (*classroom.Classroom, error) {
	if room, ok := f.rooms[id]; ok {
		return room, nil
	}
	return nil, classroom.ErrNotFound
}

func (f *fakeRoomService) List(context.Context, classroom.Filter) ([]*classroom.Classroom, error) {
	var out []*classroom.Classroom
	for _, room := range f.rooms {
		out = append(out, room)
	}
	return out, nil
}

func newTestService(now time.Time, rooms ...*classroom.Classroom) (*service, *fakeRepo) {
	repo := &fakeRepo{}
	byID := make(map[string]*classroom.Classroom)
	for _, room := range rooms {
		byID[room.ID] = room
	}

	svc := NewService(repo, &fakeRoomService{rooms: byID}, testDomain, time.UTC).(*service)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func testRoom(id string, capacity int) *classroom.Classroom {
	return &classroom.Classroom{ID: id, Name: "Room " + id, Capacity: capacity, RoomType: classroom.TypeStudyRoom}
}

func TestServiceBook(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)

	t.Run("validation happens before any store access", func(t *testing.T) {
		svc, repo := newTestService(now, testRoom("room-1", 2))

		_, err := svc.Book(ctx, BookRequest{
			ClassroomID:  "room-1",
			StudentEmail: "someone@gmail.com",
			StartTime:    at(9, 0),
			EndTime:      at(10, 0),
		})
		require.ErrorIs(t, err, ErrInvalidEmailDomain)
		require.Zero(t, repo.expireCalls)
		require.Empty(t, repo.reservations)
	})

	t.Run("unknown room", func(t *testing.T) {
		svc, _ := newTestService(now, testRoom("room-1", 2))

		_, err := svc.Book(ctx, BookRequest{
			ClassroomID:  "missing",
			StudentEmail: "student" + testDomain,
			StartTime:    at(9, 0),
			EndTime:      at(10, 0),
		})
		require.ErrorIs(t, err, ErrClassroomNotFound)
	})

	t.Run("accepted booking blocks itself on retry", func(t *testing.T) {
		svc, repo := newTestService(now, testRoom("room-1", 2))

		req := BookRequest{
			ClassroomID:  "room-1",
			StudentEmail: "student" + testDomain,
			StartTime:    at(9, 0),
			EndTime:      at(10, 0),
			IsPrivate:    true,
		}

		first, err := svc.Book(ctx, req)
		require.NoError(t, err)
		require.Equal(t, StatusReserved, first.Status)
		require.Equal(t, 1, repo.expireCalls)

		// Round-trip: the accepted reservation appears in its own
		// interval's overlapping set and cannot be double-booked.
		_, err = svc.Book(ctx, req)
		require.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("sweep frees a no-show before admission", func(t *testing.T) {
		svc, repo := newTestService(at(9, 20), testRoom("room-1", 1))

		// Reserved 09:00-10:00, never checked in, now 09:20.
		repo.reservations = append(repo.reservations, &Reservation{
			ID: "stale", ClassroomID: "room-1",
			StudentEmail: "noshow" + testDomain,
			StartTime:    at(9, 0), EndTime: at(10, 0),
			Status: StatusReserved,
		})

		got, err := svc.Book(ctx, BookRequest{
			ClassroomID:  "room-1",
			StudentEmail: "student" + testDomain,
			StartTime:    at(10, 0),
			EndTime:      at(11, 0),
		})
		require.NoError(t, err)
		require.Equal(t, StatusReserved, got.Status)

		stale, err := repo.GetByID(ctx, "stale")
		require.NoError(t, err)
		require.Equal(t, StatusExpired, stale.Status)
	})
}

func TestServiceCheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms within window", func(t *testing.T) {
		svc, repo := newTestService(at(8, 56), testRoom("room-1", 2))
		repo.reservations = append(repo.reservations, pendingAt(9, 0))

		got, err := svc.CheckIn(ctx, "room-1", "student"+testDomain)
		require.NoError(t, err)
		require.Equal(t, StatusCheckedIn, got.Status)
	})

	t.Run("rejects wrong domain before store access", func(t *testing.T) {
		svc, repo := newTestService(at(8, 56), testRoom("room-1", 2))

		_, err := svc.CheckIn(ctx, "room-1", "student@gmail.com")
		require.ErrorIs(t, err, ErrInvalidEmailDomain)
		require.Zero(t, repo.expireCalls)
	})

	t.Run("window expired one minute past the deadline", func(t *testing.T) {
		// 09:16 against a 09:00 reservation. The row is past its deadline
		// but must still be visible here, so the requester hears "window
		// expired" rather than "not found".
		svc, repo := newTestService(at(9, 16), testRoom("room-1", 2))
		repo.reservations = append(repo.reservations, pendingAt(9, 0))

		_, err := svc.CheckIn(ctx, "room-1", "student"+testDomain)
		require.ErrorIs(t, err, ErrCheckInWindowExpired)

		// Check-in never sweeps; the no-show is left for the next
		// availability or booking read to expire.
		require.Zero(t, repo.expireCalls)
		overdue, err := repo.GetByID(ctx, "09:00")
		require.NoError(t, err)
		require.Equal(t, StatusReserved, overdue.Status)
	})

	t.Run("nothing pending at all", func(t *testing.T) {
		svc, _ := newTestService(at(9, 16), testRoom("room-1", 2))

		_, err := svc.CheckIn(ctx, "room-1", "student"+testDomain)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("too early with opening instant", func(t *testing.T) {
		svc, repo := newTestService(at(8, 50), testRoom("room-1", 2))
		repo.reservations = append(repo.reservations, pendingAt(9, 0))

		_, err := svc.CheckIn(ctx, "room-1", "student"+testDomain)

		var tooEarly *TooEarlyError
		require.ErrorAs(t, err, &tooEarly)
		require.Equal(t, at(8, 55), tooEarly.OpensAt)
	})
}

func TestServiceGet(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(at(8, 0), testRoom("room-1", 2))
	repo.reservations = append(repo.reservations, pendingAt(9, 0))

	got, err := svc.Get(ctx, "09:00")
	require.NoError(t, err)
	require.Equal(t, at(9, 0), got.StartTime)

	_, err = svc.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestServiceExpireOverdueIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(at(9, 20), testRoom("room-1", 2))
	repo.reservations = append(repo.reservations, pendingAt(8, 0), pendingAt(9, 0), pendingAt(14, 0))

	n, err := svc.ExpireOverdue(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	// Running the sweep again changes nothing.
	n, err = svc.ExpireOverdue(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	upcoming, err := repo.GetByID(ctx, "14:00")
	require.NoError(t, err)
	require.Equal(t, StatusReserved, upcoming.Status)
}

func TestServiceDayStatuses(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)

	blockedRoom := testRoom("room-2", 1)
	svc, repo := newTestService(now, testRoom("room-1", 2), blockedRoom)

	// room-2 privately held for the whole grid.
	for _, h := range []int{8, 11, 14, 17, 20} {
		span := 3
		if h == 20 {
			span = 2
		}
		r := res(h, span, true, StatusReserved)
		r.ID = fmt.Sprintf("block-%d", h)
		r.ClassroomID = "room-2"
		repo.reservations = append(repo.reservations, r)
	}

	statuses, err := svc.DayStatuses(ctx, testDay, nil)
	require.NoError(t, err)

	// Fully blocked rooms are omitted from the dashboard listing.
	require.Len(t, statuses, 1)
	require.Equal(t, "room-1", statuses[0].Classroom.ID)
	require.Equal(t, RoomAvailable, statuses[0].Availability.Status)

	// But the by-room view still reports them, with the private summary.
	ra, err := svc.RoomDayStatus(ctx, "room-2", testDay, nil)
	require.NoError(t, err)
	require.Equal(t, RoomPrivate, ra.Availability.Status)

	// Day outside the booking horizon is a validation error.
	_, err = svc.DayStatuses(ctx, testDay.AddDate(0, 2, 0), nil)
	require.ErrorIs(t, err, ErrOutsideHorizon)
}
