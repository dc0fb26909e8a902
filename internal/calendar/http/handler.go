package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/calendar"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/pkg/response"
)

type Handler struct {
	service calendar.Service
	now     func() time.Time
}

func NewHandler(service calendar.Service) *Handler {
	return &Handler{
		service: service,
		now:     time.Now,
	}
}

// Month renders the month grid with the selected auditorium's booked dates.
func (h *Handler) Month(c *gin.Context) {
	var req MonthRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	now := h.now().UTC()
	ym := calendar.YearMonth{Year: now.Year(), Month: now.Month()}
	if req.Year != 0 {
		ym.Year = req.Year
	}
	if req.Month != 0 {
		ym.Month = time.Month(req.Month)
	}

	m, err := h.service.Month(c.Request.Context(), req.AuditoriumID, ym)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewMonthResponse(m))
}
