package booking

import "time"

// Window is a reservation span on one calendar date. An end at or before the
// start means the span runs past midnight into the next day.
type Window struct {
	Date  time.Time
	Start TimeOfDay
	End   TimeOfDay

	StartAt time.Time
	EndAt   time.Time
}

// NewWindow validates and normalizes a candidate window.
// Equal start and end times are rejected: they could mean zero length or a full day.
func NewWindow(date time.Time, start, end TimeOfDay) (Window, error) {
	if start == end {
		return Window{}, ErrInvalidWindow
	}
	return normalize(date, start, end), nil
}

func normalize(date time.Time, start, end TimeOfDay) Window {
	day := DateOf(date)
	startAt := day.Add(start.Offset())
	endAt := day.Add(end.Offset())
	if !endAt.After(startAt) {
		endAt = endAt.Add(secondsPerDay * time.Second)
	}
	return Window{
		Date:    day,
		Start:   start,
		End:     end,
		StartAt: startAt,
		EndAt:   endAt,
	}
}

// Duration is the length of the normalized span.
func (w Window) Duration() time.Duration {
	return w.EndAt.Sub(w.StartAt)
}

// Overnight reports whether the window ends on the following day.
func (w Window) Overnight() bool {
	return w.EndAt.After(w.Date.Add(secondsPerDay * time.Second))
}

// Overlaps treats both windows as half-open intervals, so touching endpoints do not overlap.
func (w Window) Overlaps(o Window) bool {
	return w.StartAt.Before(o.EndAt) && w.EndAt.After(o.StartAt)
}

// Conflicts compares two windows stored under the same date on that date's
// 24-hour cycle: the part of an overnight window past midnight also occupies
// the early hours of its stored date. 22:00-02:00 conflicts with 01:00-03:00
// but not with 02:00-03:00.
func (w Window) Conflicts(o Window) bool {
	day := secondsPerDay * time.Second
	return w.Overlaps(o) || w.shift(day).Overlaps(o) || w.shift(-day).Overlaps(o)
}

func (w Window) shift(d time.Duration) Window {
	w.StartAt = w.StartAt.Add(d)
	w.EndAt = w.EndAt.Add(d)
	return w
}
