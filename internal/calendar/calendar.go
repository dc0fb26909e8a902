package calendar

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/pkg/apperror"
)

var (
	ErrInvalidMonth = apperror.New(http.StatusBadRequest, "month must be between 1 and 12")
	ErrInvalidYear  = apperror.New(http.StatusBadRequest, "year must be between 1 and 9999")
)

// DayNames heads the grid columns. Weeks start on Monday.
var DayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// YearMonth identifies one calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

func (ym YearMonth) Validate() error {
	if ym.Year < 1 || ym.Year > 9999 {
		return ErrInvalidYear
	}
	if ym.Month < time.January || ym.Month > time.December {
		return ErrInvalidMonth
	}
	return nil
}

// First is midnight UTC on the first day of the month.
func (ym YearMonth) First() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (ym YearMonth) Prev() YearMonth {
	if ym.Month == time.January {
		return YearMonth{Year: ym.Year - 1, Month: time.December}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month - 1}
}

func (ym YearMonth) Next() YearMonth {
	if ym.Month == time.December {
		return YearMonth{Year: ym.Year + 1, Month: time.January}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

// Weeks returns the Monday-first weeks covering the month. The first and last
// weeks are padded with days from the neighbouring months, so every week has
// seven dates.
func Weeks(ym YearMonth) [][]time.Time {
	first := ym.First()
	last := first.AddDate(0, 1, -1)

	offset := (int(first.Weekday()) + 6) % 7
	day := first.AddDate(0, 0, -offset)

	var weeks [][]time.Time
	for !day.After(last) {
		week := make([]time.Time, 7)
		for i := range week {
			week[i] = day
			day = day.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}
