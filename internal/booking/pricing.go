package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

var secondsPerHour = decimal.NewFromInt(3600)

// Quote holds the derived fields stamped onto a booking before it is stored.
type Quote struct {
	Duration  time.Duration
	TotalCost decimal.Decimal
}

// NewQuote prices a window at the given hourly rate.
func NewQuote(w Window, rate decimal.Decimal) Quote {
	d := w.Duration()
	return Quote{
		Duration:  d,
		TotalCost: Cost(d, rate),
	}
}

// Cost is rate * seconds / 3600 rounded to cents, halves away from zero.
// Rates are non-negative, so this is round-half-up.
func Cost(d time.Duration, rate decimal.Decimal) decimal.Decimal {
	seconds := decimal.NewFromInt(int64(d / time.Second))
	return rate.Mul(seconds).Div(secondsPerHour).Round(2)
}

// SplitDuration breaks a duration into whole hours and leftover minutes.
func SplitDuration(d time.Duration) (hours, minutes int) {
	total := int(d / time.Minute)
	return total / 60, total % 60
}
