package booking

import (
	"fmt"
	"time"
)

const (
	secondsPerDay = 24 * 60 * 60
	dateLayout    = "2006-01-02"
)

// TimeOfDay is a wall-clock time within a day, counted in seconds since midnight.
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from its clock components.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hour*3600 + minute*60 + second), nil
}

// ParseTimeOfDay accepts "15:04" and "15:04:05".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
		}
	}
	return 0, ErrInvalidTimeOfDay
}

func (t TimeOfDay) Hour() int   { return int(t) / 3600 }
func (t TimeOfDay) Minute() int { return int(t) % 3600 / 60 }
func (t TimeOfDay) Second() int { return int(t) % 60 }

// Offset is the distance from midnight.
func (t TimeOfDay) Offset() time.Duration {
	return time.Duration(t) * time.Second
}

// String formats as "15:04", adding seconds only when they are set.
func (t TimeOfDay) String() string {
	if t.Second() != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Kitchen formats as a 12-hour clock, e.g. "03:04 PM".
func (t TimeOfDay) Kitchen() string {
	return time.Date(2000, 1, 1, t.Hour(), t.Minute(), 0, 0, time.UTC).Format("03:04 PM")
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// DateOf drops the clock part of t, keeping its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
