package booking

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrSlotConflict      = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidWindow     = apperror.New(http.StatusBadRequest, "start time and end time cannot be the same")
	ErrInvalidTimeOfDay  = apperror.New(http.StatusBadRequest, "time must be formatted as HH:MM or HH:MM:SS")
	ErrInvalidDate       = apperror.New(http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidTransition = apperror.New(http.StatusConflict, "booking cannot move to the requested status")
	ErrResourceNotFound  = apperror.New(http.StatusNotFound, "auditorium not found")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "permission denied")
)

type Status string

// Cancelled is kept for stored data; no operation moves a booking into it.
// Removing a booking is done by deleting it.
const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking is a reservation of one auditorium for one window on one date.
// Duration and TotalCost are derived from the window and the auditorium's
// hourly rate on every write and are never taken from callers.
type Booking struct {
	ID           string
	UserID       string
	UserName     string
	UserEmail    string
	ResourceID   string
	ResourceName string
	Date         time.Time
	StartTime    TimeOfDay
	EndTime      TimeOfDay
	Duration     time.Duration
	TotalCost    decimal.Decimal
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Window returns the booking's normalized span. Stored rows are not re-validated here.
func (b *Booking) Window() Window {
	return normalize(b.Date, b.StartTime, b.EndTime)
}

// Actor is the authenticated caller of a booking operation.
type Actor struct {
	UserID  string
	IsStaff bool
}

func (a Actor) owns(b *Booking) bool {
	return a.UserID != "" && a.UserID == b.UserID
}

type Filter struct {
	UserID     string
	ResourceID string
	Status     string
	DateFrom   *time.Time // Bookings on or after this date
	DateTo     *time.Time // Bookings on or before this date
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
