package reservation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/campusbooking/room-booking-backend/internal/classroom"
)

// BookRequest is the write-side input: a candidate reservation.
type BookRequest struct {
	ClassroomID  string
	StudentEmail string
	StartTime    time.Time
	EndTime      time.Time
	IsPrivate    bool
}

// RoomAvailability pairs a room with its computed availability.
type RoomAvailability struct {
	Classroom    *classroom.Classroom
	Availability DayAvailability
}

type Service interface {
	// Book admits and persists a candidate reservation, or reports why not.
	Book(ctx context.Context, req BookRequest) (*Reservation, error)

	// CheckIn confirms the requester's pending reservation for a room whose
	// check-in window contains the current instant.
	CheckIn(ctx context.Context, classroomID, email string) (*Reservation, error)

	// Get returns one reservation by id.
	Get(ctx context.Context, id string) (*Reservation, error)

	List(ctx context.Context, filter Filter) ([]*Reservation, error)

	// DayStatuses computes availability for every room on a day. Rooms with
	// no usable slot are omitted, matching the dashboard listing. When hour
	// is set, rooms where that hour is unusable are omitted.
	DayStatuses(ctx context.Context, day time.Time, hour *int) ([]RoomAvailability, error)

	// RoomDayStatus computes availability for a single room, including
	// rooms that are entirely blocked (status private or full).
	RoomDayStatus(ctx context.Context, classroomID string, day time.Time, hour *int) (*RoomAvailability, error)

	// ExpireOverdue runs the no-show sweep and reports how many reservations
	// were expired.
	ExpireOverdue(ctx context.Context) (int64, error)
}

type service struct {
	repo        Repository
	roomService classroom.Service
	emailDomain string
	loc         *time.Location

	now func() time.Time
}

func NewService(repo Repository, roomService classroom.Service, emailDomain string, loc *time.Location) Service {
	return &service{
		repo:        repo,
		roomService: roomService,
		emailDomain: emailDomain,
		loc:         loc,
		now:         time.Now,
	}
}

func (s *service) Book(ctx context.Context, req BookRequest) (*Reservation, error) {
	now := s.now().In(s.loc)

	c := Candidate{
		ClassroomID:  req.ClassroomID,
		StudentEmail: req.StudentEmail,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		IsPrivate:    req.IsPrivate,
	}

	// 1. Validation, before any store access.
	if err := c.Validate(s.emailDomain, now, s.loc); err != nil {
		return nil, err
	}

	// 2. Resolve the room; its capacity drives the admission rule.
	room, err := s.roomService.GetByID(ctx, req.ClassroomID)
	if err != nil {
		if errors.Is(err, classroom.ErrNotFound) {
			return nil, ErrClassroomNotFound
		}
		return nil, err
	}

	// 3. Sweep no-shows so stale reserved rows cannot block the candidate.
	if _, err := s.repo.ExpireOverdue(ctx, now); err != nil {
		return nil, err
	}

	// 4. Atomic admit-and-insert against the latest snapshot.
	return s.repo.CreateAdmitted(ctx, c, room.Capacity)
}

func (s *service) CheckIn(ctx context.Context, classroomID, email string) (*Reservation, error) {
	now := s.now().In(s.loc)

	if !strings.HasSuffix(strings.ToLower(email), strings.ToLower(s.emailDomain)) {
		return nil, ErrInvalidEmailDomain
	}

	if _, err := s.roomService.GetByID(ctx, classroomID); err != nil {
		if errors.Is(err, classroom.ErrNotFound) {
			return nil, ErrClassroomNotFound
		}
		return nil, err
	}

	// No sweep here: a reservation just past its deadline must still be
	// visible so the requester hears "window expired", not "not found".
	// The next availability or booking read expires it.
	pending, err := s.repo.List(ctx, Filter{
		ClassroomID:  classroomID,
		StudentEmail: email,
		Statuses:     []Status{StatusReserved},
	})
	if err != nil {
		return nil, err
	}

	res, err := SelectCheckInCandidate(pending, now)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, res.ID, StatusCheckedIn); err != nil {
		return nil, err
	}
	res.Status = StatusCheckedIn
	return res, nil
}

func (s *service) Get(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Reservation, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) DayStatuses(ctx context.Context, day time.Time, hour *int) ([]RoomAvailability, error) {
	snapshotByRoom, rooms, err := s.daySnapshot(ctx, day)
	if err != nil {
		return nil, err
	}

	var result []RoomAvailability
	for _, room := range rooms {
		avail := ComputeDayAvailability(room.Capacity, day, snapshotByRoom[room.ID], hour, s.loc)
		if !avail.Usable() {
			continue
		}
		result = append(result, RoomAvailability{Classroom: room, Availability: avail})
	}
	return result, nil
}

func (s *service) RoomDayStatus(ctx context.Context, classroomID string, day time.Time, hour *int) (*RoomAvailability, error) {
	if err := s.validateDay(day); err != nil {
		return nil, err
	}

	room, err := s.roomService.GetByID(ctx, classroomID)
	if err != nil {
		if errors.Is(err, classroom.ErrNotFound) {
			return nil, ErrClassroomNotFound
		}
		return nil, err
	}

	if _, err := s.repo.ExpireOverdue(ctx, s.now().In(s.loc)); err != nil {
		return nil, err
	}

	snapshot, err := s.repo.List(ctx, Filter{
		ClassroomID: classroomID,
		Statuses:    []Status{StatusReserved, StatusCheckedIn},
		Day:         day,
	})
	if err != nil {
		return nil, err
	}

	avail := ComputeDayAvailability(room.Capacity, day, snapshot, hour, s.loc)
	return &RoomAvailability{Classroom: room, Availability: avail}, nil
}

func (s *service) ExpireOverdue(ctx context.Context) (int64, error) {
	return s.repo.ExpireOverdue(ctx, s.now().In(s.loc))
}

// daySnapshot sweeps no-shows, then loads every room and the day's
// non-terminal reservations grouped per room.
func (s *service) daySnapshot(ctx context.Context, day time.Time) (map[string][]*Reservation, []*classroom.Classroom, error) {
	if err := s.validateDay(day); err != nil {
		return nil, nil, err
	}

	if _, err := s.repo.ExpireOverdue(ctx, s.now().In(s.loc)); err != nil {
		return nil, nil, err
	}

	rooms, err := s.roomService.List(ctx, classroom.Filter{})
	if err != nil {
		return nil, nil, err
	}

	snapshot, err := s.repo.List(ctx, Filter{
		Statuses: []Status{StatusReserved, StatusCheckedIn},
		Day:      day,
	})
	if err != nil {
		return nil, nil, err
	}

	byRoom := make(map[string][]*Reservation)
	for _, r := range snapshot {
		byRoom[r.ClassroomID] = append(byRoom[r.ClassroomID], r)
	}
	return byRoom, rooms, nil
}

func (s *service) validateDay(day time.Time) error {
	today := DayStart(s.now(), s.loc)
	d := DayStart(day, s.loc)
	if d.Before(today) || d.After(today.AddDate(0, 0, HorizonDays)) {
		return ErrOutsideHorizon
	}
	return nil
}
