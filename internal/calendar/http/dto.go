package http

import (
	"github.com/nekogravitycat/auditorium-booking-backend/internal/calendar"
)

const dateLayout = "2006-01-02"

// MonthRequest selects the month and, optionally, the auditorium to mark.
// Year and month default to the current month.
type MonthRequest struct {
	AuditoriumID string `form:"auditorium" binding:"omitempty,uuid"`
	Year         int    `form:"year" binding:"omitempty,min=1,max=9999"`
	Month        int    `form:"month" binding:"omitempty,min=1,max=12"`
}

type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type DayResponse struct {
	Date    string `json:"date"`
	Day     int    `json:"day"`
	InMonth bool   `json:"in_month"`
	Booked  bool   `json:"booked"`
	IsToday bool   `json:"is_today"`
}

type MonthResponse struct {
	AuditoriumID string          `json:"auditorium_id,omitempty"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	MonthName    string          `json:"month_name"`
	DayNames     []string        `json:"day_names"`
	Weeks        [][]DayResponse `json:"weeks"`
	BookedDates  []string        `json:"booked_dates"`
	Today        string          `json:"today"`
	Prev         MonthRef        `json:"prev"`
	Next         MonthRef        `json:"next"`
}

func newMonthRef(ym calendar.YearMonth) MonthRef {
	return MonthRef{Year: ym.Year, Month: int(ym.Month)}
}

func NewMonthResponse(m *calendar.Month) MonthResponse {
	weeks := make([][]DayResponse, len(m.Weeks))
	for i, week := range m.Weeks {
		weeks[i] = make([]DayResponse, len(week))
		for j, d := range week {
			weeks[i][j] = DayResponse{
				Date:    d.Date.Format(dateLayout),
				Day:     d.Date.Day(),
				InMonth: d.InMonth,
				Booked:  d.Booked,
				IsToday: d.IsToday,
			}
		}
	}

	booked := make([]string, len(m.BookedDates))
	for i, d := range m.BookedDates {
		booked[i] = d.Format(dateLayout)
	}

	return MonthResponse{
		AuditoriumID: m.ResourceID,
		Year:         m.Year,
		Month:        int(m.Month),
		MonthName:    m.Month.String(),
		DayNames:     calendar.DayNames,
		Weeks:        weeks,
		BookedDates:  booked,
		Today:        m.Today.Format(dateLayout),
		Prev:         newMonthRef(m.Prev()),
		Next:         newMonthRef(m.Next()),
	}
}
