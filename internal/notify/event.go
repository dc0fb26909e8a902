package notify

import (
	"encoding/json"
	"fmt"
)

// Routing keys published on the booking exchange.
const (
	RKBookingCreated = "booking.created"
)

// Event carries what the confirmation mail needs about a newly created booking.
// Times are pre-formatted so consumers need no knowledge of the booking model.
type Event struct {
	BookingID     string `json:"booking_id"`
	Recipient     string `json:"recipient"`
	RecipientName string `json:"recipient_name"`
	ResourceName  string `json:"resource_name"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	TotalCost     string `json:"total_cost"`
	Status        string `json:"status"`
}

// DecodeEvent parses a JSON event body.
func DecodeEvent(b []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(b, &ev); err != nil {
		return Event{}, fmt.Errorf("decode event payload failed: %w", err)
	}
	return ev, nil
}
