package user

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrUsernameTaken      = apperror.New(http.StatusConflict, "username already taken")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid username or password")
	ErrInactiveUser       = apperror.New(http.StatusUnauthorized, "invalid username or password")
	ErrEmailRequired      = apperror.New(http.StatusBadRequest, "email is required")
	ErrInvalidUsername    = apperror.New(http.StatusBadRequest, "username must be 1-150 characters of letters, digits and @.+-_")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "password is too short")
)

// User represents a user in the system.
type User struct {
	ID           string // UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
	IsActive     bool
	IsStaff      bool // Staff manage auditoriums and confirm bookings
}
