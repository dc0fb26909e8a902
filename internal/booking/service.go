package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/notify"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/resource"
)

type CreateRequest struct {
	UserID     string
	ResourceID string
	Date       time.Time
	StartTime  TimeOfDay
	EndTime    TimeOfDay
}

// UpdateRequest carries the fields an owner may change. Nil fields keep their value.
type UpdateRequest struct {
	ResourceID *string
	Date       *time.Time
	StartTime  *TimeOfDay
	EndTime    *TimeOfDay
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string, actor Actor) (*Booking, error)
	List(ctx context.Context, filter Filter, actor Actor) ([]*Booking, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, actor Actor) (*Booking, error)
	Confirm(ctx context.Context, id string, actor Actor) (*Booking, error)
	Delete(ctx context.Context, id string, actor Actor) error

	// BookedDates lists the dates of the given month holding bookings for the auditorium.
	BookedDates(ctx context.Context, resourceID string, year int, month time.Month) ([]time.Time, error)
}

// ResourceLookup is the part of the auditorium service bookings rely on.
type ResourceLookup interface {
	GetByID(ctx context.Context, id string) (*resource.Resource, error)
}

type service struct {
	repo      Repository
	resources ResourceLookup
	notifier  notify.Notifier
	logger    *zap.Logger
}

func NewService(repo Repository, resources ResourceLookup, notifier notify.Notifier, logger *zap.Logger) Service {
	return &service{
		repo:      repo,
		resources: resources,
		notifier:  notifier,
		logger:    logger,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	b := &Booking{
		UserID:     req.UserID,
		ResourceID: req.ResourceID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     StatusPending,
	}

	if err := s.save(ctx, b, true); err != nil {
		return nil, err
	}

	created, err := s.repo.GetByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, created)
	return created, nil
}

func (s *service) GetByID(ctx context.Context, id string, actor Actor) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff && !actor.owns(b) {
		return nil, ErrNotFound
	}
	return b, nil
}

// List returns the caller's own bookings. Staff see every booking and may
// narrow the result with filter.UserID.
func (s *service) List(ctx context.Context, filter Filter, actor Actor) ([]*Booking, int, error) {
	if !actor.IsStaff {
		filter.UserID = actor.UserID
	}
	if filter.Status != "" && !Status(filter.Status).Valid() {
		return nil, 0, ErrInvalidStatus
	}
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, actor Actor) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.owns(b) {
		return nil, ErrNotFound
	}

	if req.ResourceID != nil {
		b.ResourceID = *req.ResourceID
	}
	if req.Date != nil {
		b.Date = *req.Date
	}
	if req.StartTime != nil {
		b.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		b.EndTime = *req.EndTime
	}

	if err := s.save(ctx, b, false); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Confirm moves a pending booking to confirmed. Confirming an already
// confirmed booking saves it again without changing its status.
func (s *service) Confirm(ctx context.Context, id string, actor Actor) (*Booking, error) {
	if !actor.IsStaff {
		return nil, ErrPermissionDenied
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch b.Status {
	case StatusPending, StatusConfirmed:
		b.Status = StatusConfirmed
	default:
		return nil, ErrInvalidTransition
	}

	if err := s.save(ctx, b, false); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string, actor Actor) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.owns(b) {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) BookedDates(ctx context.Context, resourceID string, year int, month time.Month) ([]time.Time, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return s.repo.BookedDates(ctx, resourceID, from, from.AddDate(0, 1, 0))
}

// save is the only write path. It validates the window, resolves the
// auditorium, and under the slot lock checks for overlaps, derives duration
// and cost, and persists the booking.
func (s *service) save(ctx context.Context, b *Booking, isNew bool) error {
	w, err := NewWindow(b.Date, b.StartTime, b.EndTime)
	if err != nil {
		return err
	}
	b.Date = w.Date

	res, err := s.resources.GetByID(ctx, b.ResourceID)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return ErrResourceNotFound
		}
		return err
	}

	return s.repo.WithSlotLock(ctx, b.ResourceID, w.Date, func(repo Repository) error {
		existing, err := repo.ListByResourceAndDate(ctx, b.ResourceID, w.Date)
		if err != nil {
			return err
		}
		if err := CheckOverlap(w, existing, b.ID); err != nil {
			return err
		}

		q := NewQuote(w, res.HourlyRate)
		b.Duration = q.Duration
		b.TotalCost = q.TotalCost

		if isNew {
			return repo.Create(ctx, b)
		}
		return repo.Update(ctx, b)
	})
}

// notify runs after the booking is committed, so delivery failures are only logged.
func (s *service) notify(ctx context.Context, b *Booking) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, NewEvent(b)); err != nil {
		s.logger.Warn("booking notification failed",
			zap.String("booking_id", b.ID),
			zap.String("user_id", b.UserID),
			zap.Error(err),
		)
	}
}

// NewEvent builds the notification payload for a stored booking.
func NewEvent(b *Booking) notify.Event {
	return notify.Event{
		BookingID:     b.ID,
		Recipient:     b.UserEmail,
		RecipientName: b.UserName,
		ResourceName:  b.ResourceName,
		Date:          FormatDate(b.Date),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		TotalCost:     b.TotalCost.StringFixed(2),
		Status:        string(b.Status),
	}
}
