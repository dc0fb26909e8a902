package http

import (
	"time"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/booking"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/pkg/request"
	resHttp "github.com/nekogravitycat/auditorium-booking-backend/internal/resource/http"
	userHttp "github.com/nekogravitycat/auditorium-booking-backend/internal/user/http"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	AuditoriumID string     `form:"auditorium_id" binding:"omitempty,uuid"`
	Status       string     `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	UserID       string     `form:"user_id" binding:"omitempty,uuid"`
	DateFrom     *time.Time `form:"date_from" time_format:"2006-01-02" time_utc:"1"`
	DateTo       *time.Time `form:"date_to" time_format:"2006-01-02" time_utc:"1"`
	SortBy       string     `form:"sort_by" binding:"omitempty,oneof=date start_time created_at status total_cost"`
}

// Validate performs custom validation for ListBookingsRequest.
func (r *ListBookingsRequest) Validate() error {
	if r.DateFrom != nil && r.DateTo != nil && r.DateFrom.After(*r.DateTo) {
		return errDateRange
	}
	return nil
}

type BookingResponse struct {
	ID              string              `json:"id"`
	Auditorium      resHttp.ResourceTag `json:"auditorium"`
	User            userHttp.UserTag    `json:"user"`
	Date            string              `json:"date"`
	StartTime       string              `json:"start_time"`
	EndTime         string              `json:"end_time"`
	DurationSeconds int64               `json:"duration_seconds"`
	DurationHours   int                 `json:"duration_hours"`
	DurationMinutes int                 `json:"duration_minutes"`
	TotalCost       string              `json:"total_cost"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	hours, minutes := booking.SplitDuration(b.Duration)
	return BookingResponse{
		ID:              b.ID,
		Auditorium:      resHttp.ResourceTag{ID: b.ResourceID, Name: b.ResourceName},
		User:            userHttp.UserTag{ID: b.UserID, Name: b.UserName},
		Date:            booking.FormatDate(b.Date),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		DurationSeconds: int64(b.Duration / time.Second),
		DurationHours:   hours,
		DurationMinutes: minutes,
		TotalCost:       b.TotalCost.StringFixed(2),
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// CreateBookingRequest takes the date as YYYY-MM-DD and times as HH:MM.
// An end time at or before the start time books past midnight.
type CreateBookingRequest struct {
	AuditoriumID string `json:"auditorium_id" binding:"required,uuid"`
	Date         string `json:"date" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
}

// ToDomain parses the request into a booking.CreateRequest for userID.
func (r *CreateBookingRequest) ToDomain(userID string) (booking.CreateRequest, error) {
	date, err := booking.ParseDate(r.Date)
	if err != nil {
		return booking.CreateRequest{}, err
	}
	start, err := booking.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return booking.CreateRequest{}, err
	}
	end, err := booking.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return booking.CreateRequest{}, err
	}
	return booking.CreateRequest{
		UserID:     userID,
		ResourceID: r.AuditoriumID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
	}, nil
}

type UpdateBookingRequest struct {
	AuditoriumID *string `json:"auditorium_id" binding:"omitempty,uuid"`
	Date         *string `json:"date"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
}

// ToDomain parses the fields that were sent.
func (r *UpdateBookingRequest) ToDomain() (booking.UpdateRequest, error) {
	req := booking.UpdateRequest{ResourceID: r.AuditoriumID}
	if r.Date != nil {
		d, err := booking.ParseDate(*r.Date)
		if err != nil {
			return booking.UpdateRequest{}, err
		}
		req.Date = &d
	}
	if r.StartTime != nil {
		t, err := booking.ParseTimeOfDay(*r.StartTime)
		if err != nil {
			return booking.UpdateRequest{}, err
		}
		req.StartTime = &t
	}
	if r.EndTime != nil {
		t, err := booking.ParseTimeOfDay(*r.EndTime)
		if err != nil {
			return booking.UpdateRequest{}, err
		}
		req.EndTime = &t
	}
	return req, nil
}
