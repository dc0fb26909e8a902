package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	dates []time.Time
	calls int
}

func (f *fakeSource) BookedDates(ctx context.Context, resourceID string, year int, month time.Month) ([]time.Time, error) {
	f.calls++
	return f.dates, nil
}

func newTestService(src BookedDatesSource, now time.Time) *service {
	return &service{
		bookings: src,
		now:      func() time.Time { return now },
	}
}

func dayAt(m *Month, d time.Time) Day {
	for _, week := range m.Weeks {
		for _, day := range week {
			if day.Date.Equal(d) {
				return day
			}
		}
	}
	return Day{}
}

func TestServiceMonth(t *testing.T) {
	ctx := context.Background()
	ym := YearMonth{Year: 2025, Month: time.March}
	now := time.Date(2025, time.March, 14, 23, 30, 0, 0, time.UTC)

	t.Run("Marks Booked Days And Today", func(t *testing.T) {
		src := &fakeSource{dates: []time.Time{date(2025, time.March, 5), date(2025, time.March, 20)}}
		svc := newTestService(src, now)

		m, err := svc.Month(ctx, "hall", ym)
		require.NoError(t, err)

		assert.Equal(t, 1, src.calls)
		assert.Equal(t, "hall", m.ResourceID)
		assert.Equal(t, date(2025, time.March, 14), m.Today)
		assert.Len(t, m.BookedDates, 2)

		assert.True(t, dayAt(m, date(2025, time.March, 5)).Booked)
		assert.True(t, dayAt(m, date(2025, time.March, 20)).Booked)
		assert.False(t, dayAt(m, date(2025, time.March, 6)).Booked)
		assert.True(t, dayAt(m, date(2025, time.March, 14)).IsToday)

		padding := dayAt(m, date(2025, time.February, 24))
		assert.False(t, padding.InMonth)
		assert.True(t, dayAt(m, date(2025, time.March, 1)).InMonth)
	})

	t.Run("No Auditorium Means Nothing Booked", func(t *testing.T) {
		src := &fakeSource{dates: []time.Time{date(2025, time.March, 5)}}
		svc := newTestService(src, now)

		m, err := svc.Month(ctx, "", ym)
		require.NoError(t, err)

		assert.Zero(t, src.calls)
		assert.Empty(t, m.BookedDates)
		assert.False(t, dayAt(m, date(2025, time.March, 5)).Booked)
	})

	t.Run("Today Is Taken In UTC", func(t *testing.T) {
		east := time.FixedZone("UTC+9", 9*3600)
		svc := newTestService(&fakeSource{}, time.Date(2025, time.March, 15, 7, 0, 0, 0, east))

		m, err := svc.Month(ctx, "", ym)
		require.NoError(t, err)
		assert.Equal(t, date(2025, time.March, 14), m.Today)
	})

	t.Run("Invalid Month", func(t *testing.T) {
		svc := newTestService(&fakeSource{}, now)

		_, err := svc.Month(ctx, "hall", YearMonth{Year: 2025, Month: 13})
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})
}
