package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campusbooking/room-booking-backend/internal/classroom"
	classroomHttp "github.com/campusbooking/room-booking-backend/internal/classroom/http"
	"github.com/campusbooking/room-booking-backend/internal/reservation"
	reservationHttp "github.com/campusbooking/room-booking-backend/internal/reservation/http"
)

// Config holds everything the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Location     *time.Location

	ClassroomService   classroom.Service
	ReservationService reservation.Service
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, logging, recovery) and registers the
// classroom and reservation routes.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = []string{cfg.ProdOrigins}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsConfig))

	classroomHandler := classroomHttp.NewHandler(cfg.ClassroomService)
	reservationHandler := reservationHttp.NewHandler(cfg.ReservationService, cfg.Location)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		classroomHttp.RegisterRoutes(v1, classroomHandler)
		reservationHttp.RegisterRoutes(v1, reservationHandler)
	}

	return r
}
