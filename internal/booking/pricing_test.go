package booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCost(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		rate     string
		want     string
	}{
		{name: "whole hours", duration: 2 * time.Hour, rate: "50.00", want: "100.00"},
		{name: "hour and a half", duration: 90 * time.Minute, rate: "100.00", want: "150.00"},
		{name: "half cent rounds up", duration: 90 * time.Minute, rate: "33.33", want: "50.00"},
		{name: "below half cent rounds down", duration: 20 * time.Minute, rate: "10.00", want: "3.33"},
		{name: "free auditorium", duration: 3 * time.Hour, rate: "0", want: "0.00"},
		{name: "overnight span", duration: 4 * time.Hour, rate: "25.50", want: "102.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cost(tt.duration, decimal.RequireFromString(tt.rate))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestNewQuote(t *testing.T) {
	w := window(t, "22:00", "02:00")
	rate := decimal.RequireFromString("25.50")

	q := NewQuote(w, rate)
	assert.Equal(t, 4*time.Hour, q.Duration)
	assert.True(t, decimal.RequireFromString("102").Equal(q.TotalCost))

	again := NewQuote(w, rate)
	assert.Equal(t, q.Duration, again.Duration)
	assert.True(t, q.TotalCost.Equal(again.TotalCost))
}

func TestSplitDuration(t *testing.T) {
	h, m := SplitDuration(95*time.Minute + 30*time.Second)
	assert.Equal(t, 1, h)
	assert.Equal(t, 35, m)

	h, m = SplitDuration(4 * time.Hour)
	assert.Equal(t, 4, h)
	assert.Equal(t, 0, m)

	h, m = SplitDuration(45 * time.Minute)
	assert.Equal(t, 0, h)
	assert.Equal(t, 45, m)
}
