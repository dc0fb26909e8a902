package calendar

import (
	"context"
	"time"
)

// BookedDatesSource reports the dates of a month that hold bookings for an auditorium.
type BookedDatesSource interface {
	BookedDates(ctx context.Context, resourceID string, year int, month time.Month) ([]time.Time, error)
}

// Day is one cell of the month grid.
type Day struct {
	Date    time.Time
	InMonth bool
	Booked  bool
	IsToday bool
}

// Month is the grid for one month, optionally marked with one auditorium's bookings.
type Month struct {
	YearMonth
	ResourceID  string
	Weeks       [][]Day
	BookedDates []time.Time
	Today       time.Time
}

type Service interface {
	// Month builds the grid for ym. With an empty resourceID no day is marked booked.
	Month(ctx context.Context, resourceID string, ym YearMonth) (*Month, error)
}

type service struct {
	bookings BookedDatesSource
	now      func() time.Time
}

func NewService(bookings BookedDatesSource) Service {
	return &service{
		bookings: bookings,
		now:      time.Now,
	}
}

func (s *service) Month(ctx context.Context, resourceID string, ym YearMonth) (*Month, error) {
	if err := ym.Validate(); err != nil {
		return nil, err
	}

	var booked []time.Time
	if resourceID != "" {
		var err error
		booked, err = s.bookings.BookedDates(ctx, resourceID, ym.Year, ym.Month)
		if err != nil {
			return nil, err
		}
	}

	bookedSet := make(map[time.Time]struct{}, len(booked))
	for _, d := range booked {
		bookedSet[dateKey(d)] = struct{}{}
	}

	today := dateKey(s.now().UTC())
	weeks := Weeks(ym)
	grid := make([][]Day, len(weeks))
	for i, week := range weeks {
		grid[i] = make([]Day, len(week))
		for j, d := range week {
			_, isBooked := bookedSet[d]
			grid[i][j] = Day{
				Date:    d,
				InMonth: d.Month() == ym.Month,
				Booked:  isBooked,
				IsToday: d.Equal(today),
			}
		}
	}

	return &Month{
		YearMonth:   ym,
		ResourceID:  resourceID,
		Weeks:       grid,
		BookedDates: booked,
		Today:       today,
	}, nil
}

func dateKey(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
