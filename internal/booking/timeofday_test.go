package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 9*3600 + 30*60},
		{in: "22:00", want: 22 * 3600},
		{in: "23:59:59", want: 86399},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDayFormatting(t *testing.T) {
	afternoon, err := NewTimeOfDay(15, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, "15:04", afternoon.String())
	assert.Equal(t, "03:04 PM", afternoon.Kitchen())

	withSeconds, err := NewTimeOfDay(9, 5, 7)
	require.NoError(t, err)
	assert.Equal(t, "09:05:07", withSeconds.String())

	assert.Equal(t, "12:00 AM", TimeOfDay(0).Kitchen())
	assert.Equal(t, "12:00 PM", TimeOfDay(12*3600).Kitchen())
}

func TestNewTimeOfDayRejectsOutOfRange(t *testing.T) {
	_, err := NewTimeOfDay(24, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)

	_, err = NewTimeOfDay(-1, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2030-05-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, time.May, 10, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2030-05-10", FormatDate(d))

	_, err = ParseDate("2030-02-30")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("10/05/2030")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDateOfDropsClockInUTC(t *testing.T) {
	local := time.FixedZone("UTC+9", 9*3600)
	in := time.Date(2030, time.May, 10, 23, 30, 0, 0, local)

	assert.Equal(t, time.Date(2030, time.May, 10, 0, 0, 0, 0, time.UTC), DateOf(in))
}
