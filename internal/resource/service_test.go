package resource

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/pkg/storage"
)

type memRepository struct {
	items map[string]Resource
}

func newMemRepository() *memRepository {
	return &memRepository{items: make(map[string]Resource)}
}

func (r *memRepository) Create(ctx context.Context, res *Resource) error {
	res.ID = uuid.NewString()
	r.items[res.ID] = *res
	return nil
}

func (r *memRepository) GetByID(ctx context.Context, id string) (*Resource, error) {
	res, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &res, nil
}

func (r *memRepository) List(ctx context.Context, filter Filter) ([]*Resource, int, error) {
	var out []*Resource
	for _, res := range r.items {
		copied := res
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *memRepository) Update(ctx context.Context, res *Resource) error {
	if _, ok := r.items[res.ID]; !ok {
		return ErrNotFound
	}
	r.items[res.ID] = *res
	return nil
}

func (r *memRepository) SetPhotoPath(ctx context.Context, id, path string) error {
	res, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	res.PhotoPath = path
	r.items[id] = res
	return nil
}

func (r *memRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func newTestService(t *testing.T) (Service, *memRepository, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	repo := newMemRepository()
	return NewService(repo, store, zap.NewNop()), repo, dir
}

func validRequest() CreateRequest {
	return CreateRequest{
		Name:        "  Main Hall ",
		Location:    "Building A",
		Capacity:    300,
		HourlyRate:  decimal.RequireFromString("50.00"),
		Description: "Ground floor",
	}
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Create Auditorium: Success", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		res, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "Main Hall", res.Name)
		assert.False(t, res.HasPhoto())
		assert.Len(t, repo.items, 1)
	})

	tests := []struct {
		name   string
		mutate func(*CreateRequest)
		want   error
	}{
		{name: "Blank Name", mutate: func(r *CreateRequest) { r.Name = "   " }, want: ErrEmptyName},
		{name: "Long Name", mutate: func(r *CreateRequest) { r.Name = strings.Repeat("名", 101) }, want: ErrNameTooLong},
		{name: "Blank Location", mutate: func(r *CreateRequest) { r.Location = "" }, want: ErrEmptyLocation},
		{name: "Long Location", mutate: func(r *CreateRequest) { r.Location = strings.Repeat("x", 151) }, want: ErrLocationTooLong},
		{name: "Zero Capacity", mutate: func(r *CreateRequest) { r.Capacity = 0 }, want: ErrInvalidCapacity},
		{name: "Negative Rate", mutate: func(r *CreateRequest) { r.HourlyRate = decimal.RequireFromString("-1") }, want: ErrInvalidHourlyRate},
		{name: "Sub-Cent Rate", mutate: func(r *CreateRequest) { r.HourlyRate = decimal.RequireFromString("10.005") }, want: ErrInvalidHourlyRate},
		{name: "Rate Too Large", mutate: func(r *CreateRequest) { r.HourlyRate = decimal.RequireFromString("123456789.00") }, want: ErrInvalidHourlyRate},
	}
	for _, tt := range tests {
		t.Run("Create Auditorium: "+tt.name, func(t *testing.T) {
			svc, repo, _ := newTestService(t)
			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, repo.items)
		})
	}

	t.Run("Create Auditorium: Boundary Values Accepted", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		req := validRequest()
		req.Name = strings.Repeat("名", 100)
		req.HourlyRate = decimal.RequireFromString("99999999.99")

		_, err := svc.Create(ctx, req)
		assert.NoError(t, err)

		req.HourlyRate = decimal.Zero
		_, err = svc.Create(ctx, req)
		assert.NoError(t, err)
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	res, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	t.Run("Update Auditorium: Partial", func(t *testing.T) {
		rate := decimal.RequireFromString("75.50")
		updated, err := svc.Update(ctx, res.ID, UpdateRequest{HourlyRate: &rate})
		require.NoError(t, err)

		assert.Equal(t, "Main Hall", updated.Name)
		assert.True(t, rate.Equal(updated.HourlyRate))
	})

	t.Run("Update Auditorium: Validation Failure", func(t *testing.T) {
		capacity := -5
		_, err := svc.Update(ctx, res.ID, UpdateRequest{Capacity: &capacity})
		assert.ErrorIs(t, err, ErrInvalidCapacity)

		stored, err := svc.GetByID(ctx, res.ID)
		require.NoError(t, err)
		assert.Equal(t, 300, stored.Capacity)
	})

	t.Run("Update Auditorium: Not Found", func(t *testing.T) {
		name := "Other"
		_, err := svc.Update(ctx, uuid.NewString(), UpdateRequest{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestServicePhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("Photo: None Uploaded", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		res, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		_, err = svc.Photo(ctx, res.ID)
		assert.ErrorIs(t, err, ErrNoPhoto)
	})

	t.Run("Photo: Upload Resizes And Stores JPEG", func(t *testing.T) {
		svc, _, dir := newTestService(t)
		res, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		updated, err := svc.SetPhoto(ctx, res.ID, bytes.NewReader(pngBytes(t, 2560, 1440)))
		require.NoError(t, err)
		assert.True(t, updated.HasPhoto())
		assert.Equal(t, "auditoriums/"+res.ID+".jpg", updated.PhotoPath)

		rc, err := svc.Photo(ctx, res.ID)
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, rc.Close())
		require.NoError(t, err)

		cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 1280, cfg.Width)
		assert.Equal(t, 720, cfg.Height)

		require.NoError(t, svc.Delete(ctx, res.ID))
		_, err = os.Stat(filepath.Join(dir, "auditoriums", res.ID+".jpg"))
		assert.True(t, os.IsNotExist(err), "Deleting the auditorium removes its photo")
	})

	t.Run("Photo: Invalid Upload", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		res, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		_, err = svc.SetPhoto(ctx, res.ID, strings.NewReader("not an image"))
		assert.ErrorIs(t, err, ErrInvalidPhoto)
		assert.Empty(t, repo.items[res.ID].PhotoPath)
	})

	t.Run("Photo: Unknown Auditorium", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.SetPhoto(ctx, uuid.NewString(), bytes.NewReader(pngBytes(t, 10, 10)))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
