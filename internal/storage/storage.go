package storage

import (
	"context"
	"errors"
	"io"
)

// Default permissions for files and directories created by storage.
const (
	DefaultFileMode = 0o644
	DefaultDirMode  = 0o755
)

// FileStorage defines the interface for whole-file storage operations.
type FileStorage interface {
	// Open returns a reader for the object at path.
	// A missing object is reported as ErrObjectNotFound.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Replace overwrites the object at path with everything write produces.
	// The previous content is only discarded once write has succeeded.
	Replace(ctx context.Context, path string, write func(w io.Writer) error) error
}

// Error constants for storage layer
var (
	ErrObjectNotFound = errors.New("object not found in storage")
)
