package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
)

// ErrNotAnImage is returned when the uploaded content cannot be decoded as an image.
var ErrNotAnImage = errors.New("content is not a supported image")

// ImageProcessor normalizes uploaded pictures into bounded JPEGs.
type ImageProcessor struct {
	maxWidth  int
	maxHeight int
	quality   int
}

// NewImageProcessor creates an ImageProcessor that fits images into maxWidth x maxHeight.
func NewImageProcessor(maxWidth, maxHeight int) *ImageProcessor {
	return &ImageProcessor{
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
		quality:   85,
	}
}

// Fit decodes the content, applies the EXIF orientation, scales it down to the
// bounding box (never up) and re-encodes it as JPEG.
func (p *ImageProcessor) Fit(content io.Reader) (io.Reader, error) {
	img, err := imaging.Decode(content, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	var out image.Image = img
	b := img.Bounds()
	if b.Dx() > p.maxWidth || b.Dy() > p.maxHeight {
		out = imaging.Fit(img, p.maxWidth, p.maxHeight, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, out, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf, nil
}
