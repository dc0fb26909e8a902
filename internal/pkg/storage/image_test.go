package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.RGBA{R: 200, A: 255})
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf
}

func TestImageProcessorFit(t *testing.T) {
	p := NewImageProcessor(1280, 720)

	t.Run("Large Image Scaled Into Bounds", func(t *testing.T) {
		out, err := p.Fit(pngOf(t, 2000, 1000))
		require.NoError(t, err)

		cfg, err := jpeg.DecodeConfig(out)
		require.NoError(t, err)
		assert.Equal(t, 1280, cfg.Width)
		assert.Equal(t, 640, cfg.Height)
	})

	t.Run("Small Image Keeps Its Size", func(t *testing.T) {
		out, err := p.Fit(pngOf(t, 300, 200))
		require.NoError(t, err)

		cfg, err := jpeg.DecodeConfig(out)
		require.NoError(t, err)
		assert.Equal(t, 300, cfg.Width)
		assert.Equal(t, 200, cfg.Height)
	})

	t.Run("Not An Image", func(t *testing.T) {
		_, err := p.Fit(strings.NewReader("plain text"))
		assert.ErrorIs(t, err, ErrNotAnImage)
	})
}
