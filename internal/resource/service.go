package resource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/pkg/storage"
)

type CreateRequest struct {
	Name        string
	Location    string
	Capacity    int
	HourlyRate  decimal.Decimal
	Description string
}

type UpdateRequest struct {
	Name        *string
	Location    *string
	Capacity    *int
	HourlyRate  *decimal.Decimal
	Description *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Resource, error)
	GetByID(ctx context.Context, id string) (*Resource, error)
	List(ctx context.Context, filter Filter) ([]*Resource, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error)
	Delete(ctx context.Context, id string) error

	// SetPhoto resizes the uploaded image and stores it as the auditorium's photo.
	SetPhoto(ctx context.Context, id string, content io.Reader) (*Resource, error)
	// Photo opens the stored photo. The caller closes the reader.
	Photo(ctx context.Context, id string) (io.ReadCloser, error)
}

type service struct {
	repo    Repository
	storage storage.Storage
	imgProc *storage.ImageProcessor
	logger  *zap.Logger
}

func NewService(repo Repository, store storage.Storage, logger *zap.Logger) Service {
	return &service{
		repo:    repo,
		storage: store,
		imgProc: storage.NewImageProcessor(1280, 720),
		logger:  logger,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Resource, error) {
	res := &Resource{
		Name:        strings.TrimSpace(req.Name),
		Location:    strings.TrimSpace(req.Location),
		Capacity:    req.Capacity,
		HourlyRate:  req.HourlyRate,
		Description: strings.TrimSpace(req.Description),
	}
	if err := validate(res); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Resource, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		res.Name = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		res.Location = strings.TrimSpace(*req.Location)
	}
	if req.Capacity != nil {
		res.Capacity = *req.Capacity
	}
	if req.HourlyRate != nil {
		res.HourlyRate = *req.HourlyRate
	}
	if req.Description != nil {
		res.Description = strings.TrimSpace(*req.Description)
	}
	if err := validate(res); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Delete removes the auditorium. Its bookings go with it.
func (s *service) Delete(ctx context.Context, id string) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if res.HasPhoto() {
		if err := s.storage.Delete(ctx, res.PhotoPath); err != nil {
			s.logger.Warn("failed to remove auditorium photo",
				zap.String("resource_id", id),
				zap.String("path", res.PhotoPath),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (s *service) SetPhoto(ctx context.Context, id string, content io.Reader) (*Resource, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fitted, err := s.imgProc.Fit(content)
	if err != nil {
		if errors.Is(err, storage.ErrNotAnImage) {
			return nil, ErrInvalidPhoto
		}
		return nil, err
	}

	path := photoPath(id)
	if err := s.storage.Save(ctx, path, fitted); err != nil {
		return nil, fmt.Errorf("failed to store auditorium photo: %w", err)
	}

	if err := s.repo.SetPhotoPath(ctx, id, path); err != nil {
		return nil, err
	}
	res.PhotoPath = path
	return res, nil
}

func (s *service) Photo(ctx context.Context, id string) (io.ReadCloser, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.HasPhoto() {
		return nil, ErrNoPhoto
	}

	rc, err := s.storage.Get(ctx, res.PhotoPath)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, ErrNoPhoto
		}
		return nil, fmt.Errorf("failed to open auditorium photo: %w", err)
	}
	return rc, nil
}

func photoPath(id string) string {
	return "auditoriums/" + id + ".jpg"
}

func validate(res *Resource) error {
	switch {
	case res.Name == "":
		return ErrEmptyName
	case utf8.RuneCountInString(res.Name) > maxNameLength:
		return ErrNameTooLong
	case res.Location == "":
		return ErrEmptyLocation
	case utf8.RuneCountInString(res.Location) > maxLocationLength:
		return ErrLocationTooLong
	case res.Capacity <= 0:
		return ErrInvalidCapacity
	case !validRate(res.HourlyRate):
		return ErrInvalidHourlyRate
	}
	return nil
}
