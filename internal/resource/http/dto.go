package http

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/resource"
)

// ListResourcesRequest defines query parameters for listing auditoriums.
type ListResourcesRequest struct {
	request.ListParams
	Name        string `form:"name"`
	MinCapacity int    `form:"min_capacity" binding:"omitempty,min=1"`
	SortBy      string `form:"sort_by" binding:"omitempty,oneof=name capacity hourly_rate created_at"`
}

type ResourceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	HourlyRate  string    `json:"hourly_rate"`
	Description string    `json:"description"`
	HasPhoto    bool      `json:"has_photo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ResourceTag is a brief representation of an auditorium.
type ResourceTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewResponse(r *resource.Resource) ResourceResponse {
	return ResourceResponse{
		ID:          r.ID,
		Name:        r.Name,
		Location:    r.Location,
		Capacity:    r.Capacity,
		HourlyRate:  r.HourlyRate.StringFixed(2),
		Description: r.Description,
		HasPhoto:    r.HasPhoto(),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// CreateRequest accepts hourly_rate as a JSON string or number.
type CreateRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	Location    string          `json:"location" binding:"required,max=150"`
	Capacity    int             `json:"capacity" binding:"required,min=1"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Description string          `json:"description"`
}

type UpdateRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=100"`
	Location    *string          `json:"location" binding:"omitempty,max=150"`
	Capacity    *int             `json:"capacity" binding:"omitempty,min=1"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate"`
	Description *string          `json:"description"`
}
