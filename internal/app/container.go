package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusbooking/room-booking-backend/internal/api"
	"github.com/campusbooking/room-booking-backend/internal/classroom"
	"github.com/campusbooking/room-booking-backend/internal/notify"
	"github.com/campusbooking/room-booking-backend/internal/reservation"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	EmailDomain  string
	Location     *time.Location
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router             *gin.Engine
	Listener           *notify.Listener
	ClassroomService   classroom.Service
	ReservationService reservation.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Classroom Module
	roomRepo := classroom.NewPgxRepository(cfg.DBPool)
	roomService := classroom.NewService(roomRepo)

	// Reservation Module
	resRepo := reservation.NewPgxRepository(cfg.DBPool)
	resService := reservation.NewService(resRepo, roomService, cfg.EmailDomain, cfg.Location)

	// Change notification listener (fire-and-forget fan-out)
	listener := notify.NewListener(cfg.DBPool)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		Location:           cfg.Location,
		ClassroomService:   roomService,
		ReservationService: resService,
	})

	return &Container{
		Router:             router,
		Listener:           listener,
		ClassroomService:   roomService,
		ReservationService: resService,
	}
}
