// Command seed populates the database with the demo rooms and a spread of
// shared and private reservations for tomorrow, so the dashboard has
// something to show. Safe to run against an empty schema.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/campusbooking/room-booking-backend/internal/app"
	"github.com/campusbooking/room-booking-backend/internal/classroom"
	"github.com/campusbooking/room-booking-backend/internal/config"
	"github.com/campusbooking/room-booking-backend/internal/db"
	"github.com/campusbooking/room-booking-backend/internal/reservation"
)

var demoRooms = []classroom.CreateRequest{
	{Name: "Room A", Capacity: 4, Building: "Building 1", RoomType: "study_room"},
	{Name: "Room B", Capacity: 6, Building: "Building 1", RoomType: "meeting_room"},
	{Name: "Room C", Capacity: 3, Building: "Building 2", RoomType: "study_room"},
	{Name: "Room D", Capacity: 10, Building: "Building 2", RoomType: "conference_room"},
	{Name: "Room E", Capacity: 8, Building: "Building 3", RoomType: "computer_room"},
}

type demoReservation struct {
	room      string
	email     string
	startHour int
	hours     int
	private   bool
}

var demoReservations = []demoReservation{
	// Room C: fully occupied mornings (capacity 3)
	{"Room C", "full8a", 8, 1, false},
	{"Room C", "full8b", 8, 1, false},
	{"Room C", "full8c", 8, 1, false},
	{"Room C", "full9a", 9, 1, false},
	{"Room C", "full9b", 9, 1, false},
	{"Room C", "full9c", 9, 1, false},

	// Room A: partially occupied midday, one private slot later
	{"Room A", "media1", 12, 1, false},
	{"Room A", "media2", 12, 1, false},
	{"Room A", "media3", 15, 1, true},

	// Room B: a long private block in the afternoon
	{"Room B", "priv1", 14, 2, true},

	// Room E: almost free
	{"Room E", "solo1", 10, 1, false},
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer pool.Close()

	container := app.NewContainer(app.Config{
		DBPool:      pool,
		EmailDomain: cfg.EmailDomain,
		Location:    cfg.Location,
	})

	roomsByName := make(map[string]*classroom.Classroom)
	for _, req := range demoRooms {
		room, err := container.ClassroomService.Create(ctx, req)
		if err != nil {
			log.Fatalf("failed to create %s: %v", req.Name, err)
		}
		roomsByName[room.Name] = room
		log.Printf("created %s (%s, capacity %d)", room.Name, room.RoomType.Display(), room.Capacity)
	}

	tomorrow := time.Now().In(cfg.Location).AddDate(0, 0, 1)
	created := 0
	for _, d := range demoReservations {
		room := roomsByName[d.room]
		start := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), d.startHour, 0, 0, 0, cfg.Location)

		_, err := container.ReservationService.Book(ctx, reservation.BookRequest{
			ClassroomID:  room.ID,
			StudentEmail: fmt.Sprintf("%s%s", d.email, cfg.EmailDomain),
			StartTime:    start,
			EndTime:      start.Add(time.Duration(d.hours) * time.Hour),
			IsPrivate:    d.private,
		})
		if err != nil {
			// Conflicting demo rows are expected; admission filters them.
			log.Printf("skipped %s %02d:00 for %s: %v", d.room, d.startHour, d.email, err)
			continue
		}
		created++
	}

	log.Printf("seed complete: %d rooms, %d reservations", len(roomsByName), created)
}
