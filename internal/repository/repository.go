package repository

import (
	"alcyxob/run-tracker/internal/domain" // Import our defined domain models
	"context"
)

// Error constants for repository layer
var (
	ErrStoreRead  = RepositoryError("store read failed")
	ErrStoreWrite = RepositoryError("store write failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// RunRepository defines the interface for persisting the run collection.
// The collection is always read and written as a whole.
type RunRepository interface {
	// Load returns every stored run in file order. A store that does not
	// exist yet is an empty collection. On a read failure the runs read so
	// far are returned together with an error wrapping ErrStoreRead.
	Load(ctx context.Context) ([]domain.Run, error)

	// Save replaces the stored collection with runs.
	Save(ctx context.Context, runs []domain.Run) error
}
