package booking

import (
	"net/http"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/pkg/apperror"
)

// ConflictError reports the existing booking a candidate window collides with.
// It unwraps to an AppError (409) whose chain ends in ErrSlotConflict.
type ConflictError struct {
	BookingID string
	Start     TimeOfDay
	End       TimeOfDay

	err *apperror.AppError
}

func newConflictError(b *Booking) *ConflictError {
	return &ConflictError{
		BookingID: b.ID,
		Start:     b.StartTime,
		End:       b.EndTime,
		err: apperror.Wrapf(ErrSlotConflict, http.StatusConflict,
			"This auditorium is already booked between %s - %s.", b.StartTime.Kitchen(), b.EndTime.Kitchen()),
	}
}

func (e *ConflictError) Error() string { return e.err.Error() }

func (e *ConflictError) Unwrap() error { return e.err }

// FindConflict scans existing bookings in the order given and returns the first
// one whose normalized window conflicts with the candidate (see Window.Conflicts).
// The booking with ID excludeID is skipped so an edit never collides with its
// own stored row.
//
// Callers pass bookings of one auditorium keyed to one stored date. A booking
// that wraps past midnight stays keyed to its start date only.
func FindConflict(candidate Window, existing []*Booking, excludeID string) *Booking {
	for _, b := range existing {
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if candidate.Conflicts(b.Window()) {
			return b
		}
	}
	return nil
}

// CheckOverlap is FindConflict returning a *ConflictError.
func CheckOverlap(candidate Window, existing []*Booking, excludeID string) error {
	if b := FindConflict(candidate, existing, excludeID); b != nil {
		return newConflictError(b)
	}
	return nil
}
