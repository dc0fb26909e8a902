package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/auth"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/auditorium-booking-backend/internal/booking/http"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/calendar"
	calendarHttp "github.com/nekogravitycat/auditorium-booking-backend/internal/calendar/http"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/resource"
	resHttp "github.com/nekogravitycat/auditorium-booking-backend/internal/resource/http"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/user"
	userHttp "github.com/nekogravitycat/auditorium-booking-backend/internal/user/http"
)

// Config holds the services the router exposes.
type Config struct {
	IsProduction    bool
	ProdOrigins     []string
	Logger          *zap.Logger
	UserService     user.Service
	ResService      resource.Service
	BookingService  booking.Service
	CalendarService calendar.Service
	JWTManager      *auth.JWTManager
}

// NewRouter assembles middleware (CORS, logging, auth) and registers the routes of every module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = cfg.ProdOrigins
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	if len(corsConfig.AllowOrigins) > 0 {
		r.Use(cors.New(corsConfig))
	}

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	staffMiddleware := RequireStaff(cfg.UserService)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	resHandler := resHttp.NewHandler(cfg.ResService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.UserService)
	calendarHandler := calendarHttp.NewHandler(cfg.CalendarService)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		resHttp.RegisterRoutes(v1, resHandler, authMiddleware, staffMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, staffMiddleware)
		calendarHttp.RegisterRoutes(v1, calendarHandler)
	}

	return r
}
