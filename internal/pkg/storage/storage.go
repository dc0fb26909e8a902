package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotExist is returned by Get when nothing is stored under the path.
var ErrNotExist = errors.New("stored object not found")

// Storage is a flat blob store addressed by relative, slash-separated paths.
type Storage interface {
	// Save writes content under path, replacing anything already there.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the object at path. The caller closes the reader.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the object at path. Missing objects are not an error.
	Delete(ctx context.Context, path string) error
}
