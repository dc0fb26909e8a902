package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/auth"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/booking"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/pkg/response"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/user"
)

var errDateRange = apperror.New(http.StatusBadRequest, "date_from must not be after date_to")

// UserLookup resolves the caller's staff flag.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

type Handler struct {
	service booking.Service
	users   UserLookup
}

func NewHandler(service booking.Service, users UserLookup) *Handler {
	return &Handler{
		service: service,
		users:   users,
	}
}

// actor builds the booking.Actor for the authenticated user.
func (h *Handler) actor(c *gin.Context) (booking.Actor, error) {
	userID := auth.GetUserID(c)
	u, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		return booking.Actor{}, err
	}
	return booking.Actor{UserID: u.ID, IsStaff: u.IsStaff}, nil
}

func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	actor, err := h.actor(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := booking.Filter{
		UserID:     req.UserID,
		ResourceID: req.AuditoriumID,
		Status:     req.Status,
		DateFrom:   req.DateFrom,
		DateTo:     req.DateTo,
		Page:       req.Page,
		PageSize:   req.PageSize,
		SortBy:     req.SortBy,
		SortOrder:  strings.ToUpper(req.SortOrder),
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter, actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	req, err := body.ToDomain(auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	actor, err := h.actor(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), uri.ID, actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	var body UpdateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	req, err := body.ToDomain()
	if err != nil {
		response.Error(c, err)
		return
	}

	actor, err := h.actor(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.Update(c.Request.Context(), uri.ID, req, actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// Confirm is the staff action approving a pending booking.
func (h *Handler) Confirm(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	actor, err := h.actor(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.Confirm(c.Request.Context(), uri.ID, actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	actor, err := h.actor(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID, actor); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
