package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/api"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/auth"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/booking"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/calendar"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/notify"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/pkg/storage"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/resource"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  []string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	Storage      storage.Storage
	Notifier     notify.Notifier // Falls back to a LogNotifier when nil
	Logger       *zap.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router         *gin.Engine
	JWTManager     *auth.JWTManager
	BookingService booking.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.NewLogNotifier(logger)
	}

	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher, logger.Named("user"))

	// Resource Module
	resRepo := resource.NewPgxRepository(cfg.DBPool)
	resService := resource.NewService(resRepo, cfg.Storage, logger.Named("resource"))

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, resService, notifier, logger.Named("booking"))

	// Calendar Module
	calendarService := calendar.NewService(bookingService)

	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		Logger:          logger,
		UserService:     userService,
		ResService:      resService,
		BookingService:  bookingService,
		CalendarService: calendarService,
		JWTManager:      jwtManager,
	})

	return &Container{
		Router:         router,
		JWTManager:     jwtManager,
		BookingService: bookingService,
	}
}
