package resource

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "auditorium not found")
	ErrEmptyName         = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrNameTooLong       = apperror.New(http.StatusBadRequest, "name must be at most 100 characters")
	ErrEmptyLocation     = apperror.New(http.StatusBadRequest, "location cannot be empty")
	ErrLocationTooLong   = apperror.New(http.StatusBadRequest, "location must be at most 150 characters")
	ErrInvalidCapacity   = apperror.New(http.StatusBadRequest, "capacity must be greater than zero")
	ErrInvalidHourlyRate = apperror.New(http.StatusBadRequest, "hourly rate must be a non-negative amount with at most 2 decimal places and 10 digits")
	ErrNoPhoto           = apperror.New(http.StatusNotFound, "auditorium has no photo")
	ErrInvalidPhoto      = apperror.New(http.StatusBadRequest, "photo must be a JPEG or PNG image")
)

const (
	maxNameLength     = 100
	maxLocationLength = 150
	maxRateDigits     = 10
	rateScale         = 2
)

// Resource is a bookable auditorium.
type Resource struct {
	ID          string
	Name        string
	Location    string
	Capacity    int
	HourlyRate  decimal.Decimal
	Description string
	PhotoPath   string // Storage path of the resized photo, empty when none was uploaded
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasPhoto reports whether a photo has been uploaded for the auditorium.
func (r *Resource) HasPhoto() bool {
	return r.PhotoPath != ""
}

// Filter defines parameters for listing resources.
type Filter struct {
	Name        string // Case-insensitive substring match
	MinCapacity int
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}

// validRate mirrors a NUMERIC(10,2) column: non-negative, two decimals, ten digits.
func validRate(rate decimal.Decimal) bool {
	if rate.IsNegative() {
		return false
	}
	if !rate.Equal(rate.Truncate(rateScale)) {
		return false
	}
	return integerDigits(rate) <= maxRateDigits-rateScale
}

func integerDigits(rate decimal.Decimal) int {
	whole := rate.Truncate(0).String()
	if whole == "0" {
		return 0
	}
	return len(whole)
}
